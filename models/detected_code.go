// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"encoding/json"
	"fmt"
)

// ContentType classifies what a decoded barcode payload means.
type ContentType string

const (
	ContentTypeWiFi    ContentType = "WIFI"
	ContentTypeURL     ContentType = "URL"
	ContentTypeEmail   ContentType = "EMAIL"
	ContentTypeContact ContentType = "CONTACT"
	ContentTypeOther   ContentType = "OTHER"
)

// Payload is the type-specific part of a [DetectedCode]. The set of
// implementations is closed: WiFiPayload, URLPayload, EmailPayload,
// ContactPayload and PlainPayload.
type Payload interface {
	ContentType() ContentType
	payload()
}

// WiFiPayload carries network credentials from a WIFI: code.
type WiFiPayload struct {
	SSID     *string `json:"ssid,omitempty"`
	Password *string `json:"password,omitempty"`
	// EncryptionType is the numeric scheme code as text:
	// "1" open, "2" WPA, "3" WEP. "0" means the code did not say.
	EncryptionType string `json:"encryption_type"`
}

// URLPayload carries a bookmark.
type URLPayload struct {
	Title *string `json:"title,omitempty"`
	URL   *string `json:"url,omitempty"`
}

// EmailPayload carries a prepared e-mail message.
type EmailPayload struct {
	Address *string `json:"address,omitempty"`
	Subject *string `json:"subject,omitempty"`
	Body    *string `json:"body,omitempty"`
}

// ContactPayload carries a contact card (MECARD or vCard).
type ContactPayload struct {
	Name         *string  `json:"name,omitempty"`
	Organization *string  `json:"organization,omitempty"`
	Title        *string  `json:"title,omitempty"`
	Phones       []string `json:"phones,omitempty"`
	Emails       []string `json:"emails,omitempty"`
}

// PlainPayload is used for every payload that is not classified further.
type PlainPayload struct{}

func (WiFiPayload) ContentType() ContentType    { return ContentTypeWiFi }
func (URLPayload) ContentType() ContentType     { return ContentTypeURL }
func (EmailPayload) ContentType() ContentType   { return ContentTypeEmail }
func (ContactPayload) ContentType() ContentType { return ContentTypeContact }
func (PlainPayload) ContentType() ContentType   { return ContentTypeOther }

func (WiFiPayload) payload()    {}
func (URLPayload) payload()     {}
func (EmailPayload) payload()   {}
func (ContactPayload) payload() {}
func (PlainPayload) payload()   {}

// DetectedCode is one barcode found in an image.
type DetectedCode struct {
	// RawValue is the decoded text exactly as read from the symbol.
	RawValue *string
	// Format is the symbology reported by the decoder, e.g. "QR_CODE".
	Format  string
	Payload Payload
}

// ContentType returns the tag of the code's payload. A code without payload
// is treated as plain text.
func (c DetectedCode) ContentType() ContentType {
	p := PayloadValue(c.Payload)
	if p == nil {
		return ContentTypeOther
	}
	return p.ContentType()
}

// PayloadValue returns p in its value form. Pointers to the payload structs
// satisfy [Payload] too; they are dereferenced here, and nil pointers become
// a nil Payload.
func PayloadValue(p Payload) Payload {
	switch v := p.(type) {
	case *WiFiPayload:
		if v != nil {
			return *v
		}
	case *URLPayload:
		if v != nil {
			return *v
		}
	case *EmailPayload:
		if v != nil {
			return *v
		}
	case *ContactPayload:
		if v != nil {
			return *v
		}
	case *PlainPayload:
		if v != nil {
			return *v
		}
	default:
		return p
	}
	return nil
}

type detectedCodeJSON struct {
	Type     ContentType     `json:"type"`
	RawValue *string         `json:"raw_value,omitempty"`
	Format   string          `json:"format,omitempty"`
	Payload  json.RawMessage `json:"payload,omitempty"`
}

// MarshalJSON encodes the code with a "type" discriminator so the payload
// variant survives the HTTP round trip.
func (c DetectedCode) MarshalJSON() ([]byte, error) {
	out := detectedCodeJSON{
		Type:     c.ContentType(),
		RawValue: c.RawValue,
		Format:   c.Format,
	}

	if p := PayloadValue(c.Payload); p != nil {
		if _, plain := p.(PlainPayload); !plain {
			payload, err := json.Marshal(p)
			if err != nil {
				return nil, fmt.Errorf("encode %s payload: %w", out.Type, err)
			}
			out.Payload = payload
		}
	}

	return json.Marshal(out)
}

// UnmarshalJSON restores the payload variant named by "type". Unknown types
// decode as plain text.
func (c *DetectedCode) UnmarshalJSON(b []byte) error {
	var in detectedCodeJSON
	if err := json.Unmarshal(b, &in); err != nil {
		return err
	}

	var (
		payload Payload
		err     error
	)
	switch in.Type {
	case ContentTypeWiFi:
		payload, err = decodePayload[WiFiPayload](in.Payload)
	case ContentTypeURL:
		payload, err = decodePayload[URLPayload](in.Payload)
	case ContentTypeEmail:
		payload, err = decodePayload[EmailPayload](in.Payload)
	case ContentTypeContact:
		payload, err = decodePayload[ContactPayload](in.Payload)
	default:
		payload = PlainPayload{}
	}
	if err != nil {
		return fmt.Errorf("decode %s payload: %w", in.Type, err)
	}

	c.RawValue = in.RawValue
	c.Format = in.Format
	c.Payload = payload
	return nil
}

func decodePayload[T Payload](raw json.RawMessage) (Payload, error) {
	var p T
	if len(raw) == 0 {
		return p, nil
	}
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return p, nil
}

// StringPtr returns a pointer to s. Handy for building payloads in place.
func StringPtr(s string) *string {
	return &s
}
