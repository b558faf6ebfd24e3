// ABOUTME: Response DTOs for the CatBytes API endpoints
// ABOUTME: Shapes mirror the JSON the portfolio front-end renders

package responses

// ListingResponse is one adoption card
type ListingResponse struct {
	Titulo      string  `json:"titulo" doc:"Listing title"`
	Descricao   string  `json:"descricao" doc:"Cleaned snippet"`
	URL         string  `json:"url" format:"uri" doc:"Absolute link to the original ad"`
	Fonte       string  `json:"fonte" doc:"Source host"`
	Score       float64 `json:"score" minimum:"0" maximum:"1" doc:"Relevance score"`
	IsAdopted   bool    `json:"is_adopted" doc:"The ad says the cat already found a home"`
	ScoreSource string  `json:"score_source,omitempty" enum:"ai,heuristic,override,fallback" doc:"Which scorer produced the score"`
	Motivo      string  `json:"motivo,omitempty" doc:"Short explanation from the AI scorer"`
}

// AdoptionMetaResponse describes how a search was run
type AdoptionMetaResponse struct {
	Engine        string   `json:"engine" doc:"Search engine used"`
	Termos        []string `json:"termos" doc:"Queries actually executed"`
	OnlyFallbacks bool     `json:"onlyFallbacks" doc:"True when only generic fallback links are returned"`
	AIScoring     bool     `json:"aiScoring" doc:"AI scoring was enabled for this request"`
	Scorer        string   `json:"scorer,omitempty" doc:"Scorer name"`
	Candidatos    int      `json:"candidatos" doc:"Unique listings collected before filtering"`
	Retornados    int      `json:"retornados" doc:"Listings returned"`
}

// AdoptCatResponse is the adoption search answer
type AdoptCatResponse struct {
	Sucesso    bool                 `json:"sucesso" doc:"Always true; failures degrade to fallback links"`
	Quantidade int                  `json:"quantidade" doc:"Number of listings"`
	Anuncios   []ListingResponse    `json:"anuncios" doc:"Listings sorted by score"`
	Mensagem   string               `json:"mensagem" doc:"Status text for the UI"`
	Meta       AdoptionMetaResponse `json:"meta"`
}

// PostingSlotResponse is one suggested posting time
type PostingSlotResponse struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// PostingPlanResponse suggests where and when to post
type PostingPlanResponse struct {
	When          []PostingSlotResponse `json:"when,omitempty"`
	Platforms     []string              `json:"platforms,omitempty"`
	WhereToPost   []string              `json:"where_to_post,omitempty"`
	WhoToTag      []string              `json:"who_to_tag,omitempty"`
	CTATips       []string              `json:"cta_tips,omitempty"`
	CrosspostTips []string              `json:"crosspost_tips,omitempty"`
}

// AdPackageResponse is the generated ad. Raw carries the model text when it
// could not be decoded.
type AdPackageResponse struct {
	Title       string               `json:"title,omitempty"`
	AdCopy      string               `json:"ad_copy,omitempty"`
	Hashtags    []string             `json:"hashtags,omitempty"`
	PostingPlan *PostingPlanResponse `json:"posting_plan,omitempty"`
	Raw         string               `json:"raw,omitempty"`
}

// GenerateAdResponse wraps the ad package
type GenerateAdResponse struct {
	OK   bool              `json:"ok"`
	Data AdPackageResponse `json:"data"`
}

// IdentifyCatResponse is the photo analysis
type IdentifyCatResponse struct {
	Idade         string   `json:"idade" doc:"Estimated age, \"--\" when unknown"`
	Racas         []string `json:"racas" doc:"Likely breeds"`
	Personalidade []string `json:"personalidade" doc:"Temperament traits"`
	Observacoes   string   `json:"observacoes" doc:"Free-form notes"`
}

// ValidateEmailResponse is the email verdict
type ValidateEmailResponse struct {
	Valid      bool   `json:"valid"`
	Reason     string `json:"reason,omitempty" enum:"empty,format,domain,disposable,typo,mx,error"`
	Suggestion string `json:"suggestion,omitempty" doc:"Suggested domain when a typo is likely"`
}

// HealthResponse reports liveness and which features are configured
type HealthResponse struct {
	Status   string          `json:"status" example:"ok"`
	Cache    string          `json:"cache" doc:"Cache backend"`
	AI       string          `json:"ai" doc:"AI provider, empty when not configured"`
	Search   bool            `json:"search" doc:"Search API key present"`
	Features map[string]bool `json:"features" doc:"Feature flag states"`
}
