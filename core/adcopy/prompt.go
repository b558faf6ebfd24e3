package adcopy

const instruction = `Você é um redator de social media para adoção de gatos no Brasil.
Com base na descrição do usuário, gere um pacote em JSON puro, sem markdown.
Tom acolhedor e responsável, sem sensacionalismo. Título com até 60 caracteres.
Anúncio com 3 a 5 parágrafos curtos e uma chamada para contato. De 8 a 12 hashtags em pt-BR.
Plano de divulgação de 7 dias: horários sugeridos, plataformas, onde postar, quem marcar,
dicas de mídia e crosspost. Se faltar algum dado, assuma de forma realista e deixe claro no texto.`

var stringList = map[string]interface{}{
	"type":  "array",
	"items": map[string]interface{}{"type": "string"},
}

var packageSchema = map[string]interface{}{
	"type": "object",
	"properties": map[string]interface{}{
		"title":    map[string]interface{}{"type": "string"},
		"ad_copy":  map[string]interface{}{"type": "string"},
		"hashtags": stringList,
		"posting_plan": map[string]interface{}{
			"type": "object",
			"properties": map[string]interface{}{
				"when": map[string]interface{}{
					"type": "array",
					"items": map[string]interface{}{
						"type": "object",
						"properties": map[string]interface{}{
							"day":  map[string]interface{}{"type": "string"},
							"time": map[string]interface{}{"type": "string"},
						},
					},
				},
				"platforms":      stringList,
				"where_to_post":  stringList,
				"who_to_tag":     stringList,
				"cta_tips":       stringList,
				"crosspost_tips": stringList,
			},
		},
	},
	"required": []string{"title", "ad_copy", "hashtags", "posting_plan"},
}
