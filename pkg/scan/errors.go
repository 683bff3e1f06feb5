package scan

import (
	"path/filepath"
	"strings"
)

// Per-file error codes surfaced in results. Chosen by the extension of the
// failing file.
const (
	CodeParseError     = "PARSE_ERROR"
	CodeJSONParseError = "JSON_PARSE_ERROR"
	CodeCSSParseError  = "CSS_PARSE_ERROR"
	CodeTSParseError   = "TS_PARSE_ERROR"
)

// FileError records one file that failed to scan. A FileError never aborts
// the batch; the remaining files still produce results.
type FileError struct {
	File    string `json:"file"`
	Message string `json:"message"`
	Code    string `json:"code"`
}

func errorCode(path string) string {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".json":
		return CodeJSONParseError
	case ".css", ".scss", ".sass":
		return CodeCSSParseError
	case ".ts", ".tsx", ".js", ".jsx", ".mjs", ".cjs":
		return CodeTSParseError
	default:
		return CodeParseError
	}
}
