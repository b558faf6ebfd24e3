package domain

// Image is an uploaded photo
type Image struct {
	Filename string
	MIMEType string
	Data     []byte
}

// CatProfile is the model's estimate for a cat photo
type CatProfile struct {
	Age         string   `json:"idade"`
	Breeds      []string `json:"racas"`
	Personality []string `json:"personalidade"`
	Notes       string   `json:"observacoes"`
}
