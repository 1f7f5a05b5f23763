// Package filesumd serves the analysis pipeline over JSON-RPC 2.0,
// one JSON object per line on a local TCP socket.
package filesumd

import (
	"bufio"
	"bytes"
	"encoding/json"
	"fmt"
	"io"

	"github.com/ronelsolomon/filesummarize/internal/model"
)

type Request struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Method  string          `json:"method"`
	Params  json.RawMessage `json:"params,omitempty"`
}

type Response struct {
	JSONRPC string          `json:"jsonrpc"`
	ID      json.RawMessage `json:"id,omitempty"`
	Result  any             `json:"result,omitempty"`
	Error   *ErrorObject    `json:"error,omitempty"`
}

type ErrorObject struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

type ClassifyParams struct {
	Path string `json:"path"`
}

type ClassifyResult struct {
	Category model.Category `json:"category"`
	SubType  string         `json:"sub_type"`
}

// ExtractParams carry raw source plus either a path to classify or an
// explicit language label. Language wins when both are set.
type ExtractParams struct {
	Path     string `json:"path,omitempty"`
	Language string `json:"language,omitempty"`
	Source   string `json:"source"`
}

type AnalyzeFileParams struct {
	Path      string `json:"path"`
	Model     string `json:"model,omitempty"`
	Style     string `json:"style,omitempty"`
	NoExplain bool   `json:"no_explain,omitempty"`
}

type AnalyzeSourceParams struct {
	Name      string `json:"name"`
	Source    string `json:"source"`
	Model     string `json:"model,omitempty"`
	Style     string `json:"style,omitempty"`
	NoExplain bool   `json:"no_explain,omitempty"`
}

// ReadOneLine returns the next non-blank line. A final line without a
// trailing newline is still delivered before EOF.
func ReadOneLine(r *bufio.Reader) ([]byte, error) {
	if r == nil {
		return nil, fmt.Errorf("reader is nil")
	}

	for {
		line, err := r.ReadBytes('\n')
		if err != nil && !(err == io.EOF && len(line) > 0) {
			return nil, err
		}

		line = bytes.TrimSpace(line)
		if len(line) > 0 {
			return line, nil
		}
		if err == io.EOF {
			return nil, io.EOF
		}
	}
}

func WriteOneLine(w io.Writer, obj any) error {
	if w == nil {
		return fmt.Errorf("writer is nil")
	}
	b, err := json.Marshal(obj)
	if err != nil {
		return err
	}
	b = append(b, '\n')
	_, err = w.Write(b)
	return err
}
