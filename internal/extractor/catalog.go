package extractor

// Option is one table row: an identifier with the heading that defined it and
// the first description line found under that heading. Default is the
// "(default ...)" text from the heading; it is informational only.
type Option struct {
	Name        string
	Heading     string
	Description string
	Default     string
}

// Section groups the options documented under one second-level heading.
// Options keep the position of their first insertion; re-inserting an existing
// name replaces its heading and description in place.
type Section struct {
	Name string

	order  []string
	byName map[string]Option
}

func newSection(name string) *Section {
	return &Section{Name: name, byName: make(map[string]Option)}
}

// Put inserts or overwrites the option named opt.Name.
func (s *Section) Put(opt Option) {
	if _, exists := s.byName[opt.Name]; !exists {
		s.order = append(s.order, opt.Name)
	}
	s.byName[opt.Name] = opt
}

// Lookup returns the option stored under name.
func (s *Section) Lookup(name string) (Option, bool) {
	opt, ok := s.byName[name]
	return opt, ok
}

// Options returns the options in first-occurrence order.
func (s *Section) Options() []Option {
	opts := make([]Option, 0, len(s.order))
	for _, name := range s.order {
		opts = append(opts, s.byName[name])
	}
	return opts
}

// Len returns the number of distinct option names.
func (s *Section) Len() int {
	return len(s.order)
}

// Catalog is the result of one extraction run: sections in the order their
// headings were first seen.
type Catalog struct {
	order  []*Section
	byName map[string]*Section
}

// NewCatalog returns an empty catalog.
func NewCatalog() *Catalog {
	return &Catalog{byName: make(map[string]*Section)}
}

// Enter returns the section called name, creating it at the end if it does
// not exist yet.
func (c *Catalog) Enter(name string) *Section {
	if s, ok := c.byName[name]; ok {
		return s
	}
	s := newSection(name)
	c.byName[name] = s
	c.order = append(c.order, s)
	return s
}

// Section returns the section called name, or nil.
func (c *Catalog) Section(name string) *Section {
	return c.byName[name]
}

// Sections returns every section, empty ones included, in discovery order.
func (c *Catalog) Sections() []*Section {
	out := make([]*Section, len(c.order))
	copy(out, c.order)
	return out
}

// Len returns the number of sections.
func (c *Catalog) Len() int {
	return len(c.order)
}

// OptionCount returns the number of rows across all sections.
func (c *Catalog) OptionCount() int {
	n := 0
	for _, s := range c.order {
		n += s.Len()
	}
	return n
}
