package domain

// PostingSlot is a suggested day/time to publish
type PostingSlot struct {
	Day  string `json:"day"`
	Time string `json:"time"`
}

// PostingPlan is the seven-day promotion plan for an ad
type PostingPlan struct {
	When          []PostingSlot `json:"when,omitempty"`
	Platforms     []string      `json:"platforms,omitempty"`
	WhereToPost   []string      `json:"where_to_post,omitempty"`
	WhoToTag      []string      `json:"who_to_tag,omitempty"`
	CTATips       []string      `json:"cta_tips,omitempty"`
	CrosspostTips []string      `json:"crosspost_tips,omitempty"`
}

// AdPackage is a generated adoption ad. When the model output could not be
// decoded only Raw is set.
type AdPackage struct {
	Title       string       `json:"title,omitempty"`
	AdCopy      string       `json:"ad_copy,omitempty"`
	Hashtags    []string     `json:"hashtags,omitempty"`
	PostingPlan *PostingPlan `json:"posting_plan,omitempty"`
	Raw         string       `json:"raw,omitempty"`
}
