package rust

import (
	"bytes"
	"fmt"
	"io"
	"text/template"
)

// EnumName is the name of the generated Rust enum.
const EnumName = "Material"

// The leading newline and the missing trailing one are part of the format.
const materialTemplate = `
#[derive(Copy, Clone, Debug, PartialEq, Eq, Hash, PartialOrd, Ord, Serialize, Deserialize)]
#[serde(rename_all = "snake_case")]
pub enum {{.Name}} {
{{range .Variants}}  {{.}},
{{end}}}`

var materialTmpl = template.Must(template.New("material").Parse(materialTemplate))

// RenderMaterial writes the Material enum declaration with one variant per
// entry in variants, in order.
func RenderMaterial(w io.Writer, variants []string) error {
	data := struct {
		Name     string
		Variants []string
	}{
		Name:     EnumName,
		Variants: variants,
	}
	if err := materialTmpl.Execute(w, data); err != nil {
		return fmt.Errorf("execute template: %w", err)
	}
	return nil
}

// MaterialSource renders the Material enum into memory.
func MaterialSource(variants []string) ([]byte, error) {
	var buf bytes.Buffer
	if err := RenderMaterial(&buf, variants); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
