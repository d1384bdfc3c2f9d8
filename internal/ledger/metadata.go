package ledger

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/jeffleon2/draftea-wallet-ledger/internal/models"
)

// metadataWire covers the key spellings seen inside transaction details.
type metadataWire struct {
	Method         string          `json:"method"`
	PaymentMethod  string          `json:"payment_method"`
	Note           string          `json:"note"`
	Description    string          `json:"description"`
	ProjectID      json.RawMessage `json:"project_id"`
	ProjectIDCamel json.RawMessage `json:"projectId"`
	BankDetails    json.RawMessage `json:"bank_details"`
}

// ParseMetadata reads a details payload that may be an object, a JSON
// document encoded as a string, or a plain note. It never fails; whatever
// cannot be understood is dropped.
func ParseMetadata(raw json.RawMessage) models.Metadata {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return models.Metadata{}
	}

	switch raw[0] {
	case '{':
		return decodeMetadataObject(raw)
	case '"':
		var s string
		if err := json.Unmarshal(raw, &s); err != nil {
			return models.Metadata{}
		}
		s = strings.TrimSpace(s)
		if strings.HasPrefix(s, "{") {
			if md, ok := tryMetadataObject([]byte(s)); ok {
				return md
			}
		}
		return models.Metadata{Note: s}
	default:
		return models.Metadata{}
	}
}

// RecordMetadata merges the top-level fields of a record with its parsed details.
// Top-level values win.
func RecordMetadata(raw models.RawTransaction) models.Metadata {
	md := ParseMetadata(raw.Details)
	if raw.Method != "" {
		md.Method = raw.Method
	}
	if raw.Description != "" {
		md.Note = raw.Description
	}
	if raw.ProjectID != "" {
		md.ProjectID = raw.ProjectID
	}
	return md
}

func decodeMetadataObject(raw []byte) models.Metadata {
	md, _ := tryMetadataObject(raw)
	return md
}

func tryMetadataObject(raw []byte) (models.Metadata, bool) {
	var w metadataWire
	if err := json.Unmarshal(raw, &w); err != nil {
		return models.Metadata{}, false
	}

	md := models.Metadata{
		Method:    strings.TrimSpace(firstOf(w.Method, w.PaymentMethod)),
		Note:      strings.TrimSpace(firstOf(w.Note, w.Description)),
		ProjectID: firstOf(scalarString(w.ProjectID), scalarString(w.ProjectIDCamel)),
	}

	if len(w.BankDetails) > 0 && w.BankDetails[0] == '{' {
		var bd models.BankDetails
		if err := json.Unmarshal(w.BankDetails, &bd); err == nil && bd != (models.BankDetails{}) {
			md.BankDetails = &bd
		}
	}
	return md, true
}

func scalarString(raw json.RawMessage) string {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || bytes.Equal(raw, []byte("null")) {
		return ""
	}
	var s string
	if err := json.Unmarshal(raw, &s); err == nil {
		return strings.TrimSpace(s)
	}
	var n json.Number
	if err := json.Unmarshal(raw, &n); err == nil {
		return n.String()
	}
	return ""
}

func firstOf(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
