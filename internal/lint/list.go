package lint

import (
	"io"

	"gopkg.in/yaml.v3"
)

// listedRule is the listing projection of a rule. The check procedure is
// not representable and is omitted.
type listedRule struct {
	Name        string `yaml:"name"`
	Type        string `yaml:"type"`
	Description string `yaml:"description"`
	RootType    string `yaml:"root-type,omitempty"`
}

// WriteList dumps every registered rule to w as one YAML document, in
// registry order.
func WriteList(w io.Writer) error {
	rules := All()
	out := make([]listedRule, 0, len(rules))
	for _, r := range rules {
		e := listedRule{
			Name:        r.Name,
			Type:        r.Severity.String(),
			Description: r.Description,
		}
		if r.RootType != nil {
			e.RootType = r.RootType.String()
		}
		out = append(out, e)
	}
	data, err := yaml.Marshal(out)
	if err != nil {
		return err
	}
	_, err = w.Write(data)
	return err
}
