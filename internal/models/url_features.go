package models

// URLFeatureSet holds lexical and structural features of a URL. When Error is
// non-empty the URL could not be analyzed and every other field is zero.
type URLFeatureSet struct {
	URL             string  `json:"url,omitempty"`
	URLLength       int     `json:"url_length"`
	DomainLength    int     `json:"domain_length"`
	HasHTTPS        bool    `json:"has_https"`
	HasWWW          bool    `json:"has_www"`
	Domain          string  `json:"domain"`
	TLD             string  `json:"tld"`
	Subdomain       string  `json:"subdomain"`
	HasIPAddress    bool    `json:"has_ip_address"`
	HasAtSymbol     bool    `json:"has_at_symbol"`
	HasDoubleSlash  bool    `json:"has_double_slash"`
	NumDots         int     `json:"num_dots"`
	NumHyphens      int     `json:"num_hyphens"`
	NumUnderscores  int     `json:"num_underscores"`
	NumDigits       int     `json:"num_digits"`
	DomainEntropy   float64 `json:"domain_entropy"`
	PathLength      int     `json:"path_length"`
	NumPathSegments int     `json:"num_path_segments"`
	Error           string  `json:"error,omitempty"`
}

// Valid reports whether the feature fields are meaningful.
func (f URLFeatureSet) Valid() bool {
	return f.Error == ""
}
