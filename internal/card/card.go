package card

// Attribute names observed on a blog-card element
const (
	AttrTitle    = "article-title"
	AttrDate     = "publish-date"
	AttrImageURL = "image-url"
	AttrLinkURL  = "article-url"
)

// Default field values
const (
	DefaultTitle    = "article title"
	DefaultDate     = "publish date"
	DefaultImageURL = "#"
	DefaultLinkURL  = "#"
)

// State holds everything a card renders. Values are kept exactly as the host
// supplied them.
type State struct {
	Title    string `yaml:"article-title" toml:"article-title"` // Headline and link text
	Date     string `yaml:"publish-date" toml:"publish-date"`   // Secondary date text
	ImageURL string `yaml:"image-url" toml:"image-url"`         // Thumbnail source
	LinkURL  string `yaml:"article-url" toml:"article-url"`     // Headline link target
}

// DefaultState returns a state with every field at its default
func DefaultState() State {
	return State{
		Title:    DefaultTitle,
		Date:     DefaultDate,
		ImageURL: DefaultImageURL,
		LinkURL:  DefaultLinkURL,
	}
}

// attributeFields maps each observed attribute to the field it drives
var attributeFields = map[string]func(*State) *string{
	AttrTitle:    func(s *State) *string { return &s.Title },
	AttrDate:     func(s *State) *string { return &s.Date },
	AttrImageURL: func(s *State) *string { return &s.ImageURL },
	AttrLinkURL:  func(s *State) *string { return &s.LinkURL },
}

// ObservedAttributes returns the attribute names in declaration order
func ObservedAttributes() []string {
	return []string{AttrTitle, AttrDate, AttrImageURL, AttrLinkURL}
}

// Set assigns value to the field driven by attr. It reports false for
// attributes a card does not track.
func (s *State) Set(attr, value string) bool {
	field, ok := attributeFields[attr]
	if !ok {
		return false
	}
	*field(s) = value
	return true
}

// Reset restores the field driven by attr to its default
func (s *State) Reset(attr string) bool {
	field, ok := attributeFields[attr]
	if !ok {
		return false
	}
	defaults := DefaultState()
	*field(s) = *field(&defaults)
	return true
}

// Get returns the value of the field driven by attr
func (s State) Get(attr string) (string, bool) {
	field, ok := attributeFields[attr]
	if !ok {
		return "", false
	}
	return *field(&s), true
}

// Attributes returns the state as attribute name/value pairs in declaration
// order.
func (s State) Attributes() [][2]string {
	attrs := make([][2]string, 0, len(attributeFields))
	for _, name := range ObservedAttributes() {
		value, _ := s.Get(name)
		attrs = append(attrs, [2]string{name, value})
	}
	return attrs
}
