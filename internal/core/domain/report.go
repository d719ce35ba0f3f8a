package domain

// Report is the founder dossier an investor sees alongside a message.
type Report struct {
	Founder    FounderSection  `json:"founder"`
	Company    CompanySection  `json:"company"`
	Product    ProductSection  `json:"product"`
	Market     MarketSection   `json:"market"`
	Funding    FundingSection  `json:"funding"`
	Matching   MatchingSection `json:"aiMatching"`
	Highlights []string        `json:"highlights"`
}

// FounderSection describes the person behind the project.
type FounderSection struct {
	Name             string `json:"name"`
	Background       string `json:"background"`
	Experience       string `json:"experience"`
	PreviousVentures string `json:"previousVentures"`
	Expertise        string `json:"expertise"`
	LinkedIn         string `json:"linkedIn"`
	Twitter          string `json:"twitter"`
}

// CompanySection summarises the company.
type CompanySection struct {
	Name     string `json:"name"`
	Industry string `json:"industry,omitempty"`
	Tagline  string `json:"tagline"`
	Founded  string `json:"founded"`
	Location string `json:"location"`
	Website  string `json:"website"`
	TeamSize int    `json:"teamSize"`
	KeyHires string `json:"keyHires"`
}

// ProductSection describes the product and its traction.
type ProductSection struct {
	Description string          `json:"description"`
	Problem     string          `json:"problem"`
	Solution    string          `json:"solution"`
	Features    []string        `json:"features"`
	Traction    TractionSection `json:"traction"`
}

// TractionSection holds headline metrics.
type TractionSection struct {
	Revenue   string `json:"revenue"`
	Growth    string `json:"growth"`
	Customers int    `json:"customers"`
	Retention string `json:"retention"`
	NPS       int    `json:"nps"`
}

// MarketSection sizes the opportunity.
type MarketSection struct {
	Size            string `json:"size"`
	Growth          string `json:"growth"`
	Competitors     string `json:"competitors"`
	Differentiation string `json:"differentiation"`
}

// FundingSection describes the raise.
type FundingSection struct {
	Stage         string `json:"stage"`
	Amount        string `json:"amount"`
	Use           string `json:"use"`
	PreviousRound string `json:"previousRound"`
}

// MatchingSection explains why the investor was approached.
type MatchingSection struct {
	Score     int    `json:"score"`
	Reasoning string `json:"reasoning"`
}
