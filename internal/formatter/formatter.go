// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package formatter turns detected barcodes into the text block shown in the
// result panel.
//
// Absent optional values are rendered as the literal "null" so the output
// matches what the mobile client has always shown.
package formatter

import (
	"strings"

	"github.com/MKhiriev/go-qr-scanner/models"
)

const nullValue = "null"

// Format renders a single detected code.
func Format(code models.DetectedCode) string {
	raw := orNull(code.RawValue)

	switch p := models.PayloadValue(code.Payload).(type) {
	case models.WiFiPayload:
		return "TYPE_WIFI \nssid: " + orNull(p.SSID) +
			" \npassword: " + orNull(p.Password) +
			" \nencryptionType: " + EncryptionLabel(p.EncryptionType) +
			" \n \n" + raw
	case models.URLPayload:
		return "TYPE_URL \ntitle: " + orNull(p.Title) +
			" \nurl: " + orNull(p.URL) +
			" \n\n" + raw
	case models.EmailPayload:
		return "TYPE_EMAIL \naddress: " + orNull(p.Address) +
			" \nbody: " + orNull(p.Body) +
			" \nsubject: " + orNull(p.Subject) +
			" \n\n" + raw
	case models.ContactPayload:
		return "TYPE_CONTACT_INFO \nname: " + orNull(p.Name) +
			" \norganization: " + orNull(p.Organization) +
			" \ntitle: " + orNull(p.Title) +
			" \nphones: " + lines(p.Phones) +
			" \nemails: " + lines(p.Emails) +
			" \n\n" + raw
	default:
		return "rawValue: " + raw
	}
}

// Last renders every code in order and returns the text of the last one.
// ok is false for an empty input; callers keep whatever they displayed
// before in that case.
func Last(codes []models.DetectedCode) (text string, ok bool) {
	for _, code := range codes {
		text = Format(code)
		ok = true
	}
	return text, ok
}

// EncryptionLabel maps the numeric Wi-Fi encryption code to its name.
// Unknown codes are returned unchanged.
func EncryptionLabel(code string) string {
	switch code {
	case "1":
		return "OPEN"
	case "2":
		return "WPA"
	case "3":
		return "WEP"
	default:
		return code
	}
}

func orNull(v *string) string {
	if v == nil {
		return nullValue
	}
	return *v
}

func lines(values []string) string {
	var b strings.Builder
	for _, v := range values {
		b.WriteString("\n")
		b.WriteString(v)
	}
	return b.String()
}
