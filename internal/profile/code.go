package profile

import (
	"bytes"
	"compress/gzip"
	"encoding/base64"
	"fmt"
	"io"
	"strings"

	"github.com/bytedance/sonic"

	"github.com/iburimskiy/crosssight/internal/settings"
)

// codePrefix marks CrossSight share codes. The digit leaves room to change
// the payload format later without breaking old codes silently.
const codePrefix = "XS1."

var codeEncoding = base64.URLEncoding.WithPadding(base64.NoPadding)

// EncodeCode packs the record into a compact string that survives chat and
// forum posts: JSON, gzipped, URL-safe base64, "XS1." prefix.
func EncodeCode(s settings.Settings) (string, error) {
	raw, err := sonic.Marshal(s)
	if err != nil {
		return "", fmt.Errorf("failed to marshal settings: %w", err)
	}

	var buf bytes.Buffer
	zw := gzip.NewWriter(&buf)
	if _, err := zw.Write(raw); err != nil {
		return "", fmt.Errorf("failed to compress settings: %w", err)
	}
	if err := zw.Close(); err != nil {
		return "", fmt.Errorf("failed to compress settings: %w", err)
	}

	return codePrefix + codeEncoding.EncodeToString(buf.Bytes()), nil
}

// DecodeCode is the inverse of EncodeCode. The returned record passed the
// same field-presence validation as a profile file, so callers can apply it
// wholesale or not at all.
func DecodeCode(code string) (settings.Settings, error) {
	code = strings.TrimSpace(code)
	rest, ok := strings.CutPrefix(code, codePrefix)
	if !ok {
		return settings.Settings{}, fmt.Errorf("share code does not start with %q", codePrefix)
	}

	zipped, err := codeEncoding.DecodeString(rest)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to decode base64: %w", err)
	}

	zr, err := gzip.NewReader(bytes.NewReader(zipped))
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to create gzip reader: %w", err)
	}
	defer zr.Close()

	raw, err := io.ReadAll(zr)
	if err != nil {
		return settings.Settings{}, fmt.Errorf("failed to decompress share code: %w", err)
	}

	return decode(raw)
}
