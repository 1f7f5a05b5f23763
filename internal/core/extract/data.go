package extract

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

// DataElements produces a single preview element for a data file.
// Structured formats are parsed and re-serialized so the preview is
// canonical even when the input is not; parse failure degrades to an
// element carrying the error instead of failing the call.
func DataElements(src, format string) []model.Element {
	switch strings.ToLower(strings.TrimSpace(format)) {
	case "json":
		var v any
		if err := json.Unmarshal([]byte(src), &v); err != nil {
			return []model.Element{dataError(src, "json", err)}
		}
		normalized, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return []model.Element{dataError(src, "json", err)}
		}
		return []model.Element{dataElement(src, "json", "root", "JSON data", string(normalized))}
	case "yaml":
		var v any
		if err := yaml.Unmarshal([]byte(src), &v); err != nil {
			return []model.Element{dataError(src, "yaml", err)}
		}
		normalized, err := yaml.Marshal(v)
		if err != nil {
			return []model.Element{dataError(src, "yaml", err)}
		}
		return []model.Element{dataElement(src, "yaml", "root", "YAML data", string(normalized))}
	case "toml":
		var v map[string]any
		if _, err := toml.Decode(src, &v); err != nil {
			return []model.Element{dataError(src, "toml", err)}
		}
		var buf bytes.Buffer
		if err := toml.NewEncoder(&buf).Encode(v); err != nil {
			return []model.Element{dataError(src, "toml", err)}
		}
		return []model.Element{dataElement(src, "toml", "root", "TOML data", buf.String())}
	case "xml":
		return []model.Element{dataElement(src, "xml", "xml_content", "XML data", src)}
	case "csv":
		return []model.Element{dataElement(src, "csv", "csv_content", "CSV data", src)}
	default:
		return TextElements(src, model.CategoryData, format)
	}
}

func dataElement(src, lang, name, doc, preview string) model.Element {
	return model.Element{
		Kind:      model.KindData,
		Name:      name,
		Docstring: doc,
		Source:    truncate(preview),
		StartLine: 1,
		EndLine:   lineCount(src),
		Language:  lang,
	}
}

func dataError(src, format string, err error) model.Element {
	el := dataElement(src, format, "content", fmt.Sprintf("Error parsing %s data: %v", format, err), src)
	el.ErrorMsg = err.Error()
	return el
}
