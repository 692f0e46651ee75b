// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package detector

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/MKhiriev/go-qr-scanner/models"
)

// Wi-Fi encryption codes as reported by the vision library.
const (
	wifiEncryptionUnknown = "0"
	wifiEncryptionOpen    = "1"
	wifiEncryptionWPA     = "2"
	wifiEncryptionWEP     = "3"
)

var emailAddressRe = regexp.MustCompile(`^[A-Za-z0-9._%+\-]+@[A-Za-z0-9.\-]+\.[A-Za-z]{2,}$`)

// Classify builds a DetectedCode from decoded text, recognising the payload
// conventions used by QR generators: WIFI:, MEBKM:/URLTO:/plain URLs,
// mailto:/MATMSG:/SMTP:/bare addresses, MECARD: and vCard.
func Classify(raw, format string) models.DetectedCode {
	code := models.DetectedCode{
		RawValue: models.StringPtr(raw),
		Format:   format,
		Payload:  classifyPayload(strings.TrimSpace(raw)),
	}
	return code
}

func classifyPayload(text string) models.Payload {
	upper := strings.ToUpper(text)

	switch {
	case strings.HasPrefix(upper, "WIFI:"):
		return parseWiFi(text[len("WIFI:"):])
	case strings.HasPrefix(upper, "MEBKM:"):
		return parseBookmark(text[len("MEBKM:"):])
	case strings.HasPrefix(upper, "URLTO:"):
		return parseURLTo(text[len("URLTO:"):])
	case strings.HasPrefix(upper, "MAILTO:"):
		return parseMailto(text)
	case strings.HasPrefix(upper, "MATMSG:"):
		return parseMatmsg(text[len("MATMSG:"):])
	case strings.HasPrefix(upper, "SMTP:"):
		return parseSMTP(text[len("SMTP:"):])
	case strings.HasPrefix(upper, "MECARD:"):
		return parseMecard(text[len("MECARD:"):])
	case strings.HasPrefix(upper, "BEGIN:VCARD"):
		return parseVCard(text)
	case isURL(text):
		return models.URLPayload{URL: models.StringPtr(text)}
	case emailAddressRe.MatchString(text):
		return models.EmailPayload{Address: models.StringPtr(text)}
	default:
		return models.PlainPayload{}
	}
}

func parseWiFi(body string) models.Payload {
	fields := splitFields(body)

	p := models.WiFiPayload{
		SSID:           fields.first("S"),
		Password:       fields.first("P"),
		EncryptionType: wifiEncryptionOpen,
	}

	if t := fields.first("T"); t != nil {
		p.EncryptionType = wifiEncryptionCode(*t)
	}

	return p
}

func wifiEncryptionCode(t string) string {
	switch strings.ToUpper(strings.TrimSpace(t)) {
	case "", "NOPASS", "NONE", "OPEN":
		return wifiEncryptionOpen
	case "WPA", "WPA2", "WPA3", "WPA2-EAP", "SAE":
		return wifiEncryptionWPA
	case "WEP":
		return wifiEncryptionWEP
	default:
		return wifiEncryptionUnknown
	}
}

func parseBookmark(body string) models.Payload {
	fields := splitFields(body)
	return models.URLPayload{
		Title: fields.first("TITLE"),
		URL:   fields.first("URL"),
	}
}

// URLTO:title:url
func parseURLTo(body string) models.Payload {
	title, link, found := strings.Cut(body, ":")
	if !found || !isURL(link) {
		return models.URLPayload{URL: models.StringPtr(body)}
	}

	p := models.URLPayload{URL: models.StringPtr(link)}
	if title != "" {
		p.Title = models.StringPtr(title)
	}
	return p
}

func parseMailto(text string) models.Payload {
	// mailto: is case-insensitive, url.Parse keeps the opaque part as is.
	u, err := url.Parse("mailto:" + text[len("mailto:"):])
	if err != nil {
		return models.EmailPayload{Address: models.StringPtr(text[len("mailto:"):])}
	}

	p := models.EmailPayload{}
	if addr, err := url.PathUnescape(u.Opaque); err == nil && addr != "" {
		p.Address = models.StringPtr(addr)
	}

	query := u.Query()
	if query.Has("to") && p.Address == nil {
		p.Address = models.StringPtr(query.Get("to"))
	}
	if query.Has("subject") {
		p.Subject = models.StringPtr(query.Get("subject"))
	}
	if query.Has("body") {
		p.Body = models.StringPtr(query.Get("body"))
	}

	return p
}

func parseMatmsg(body string) models.Payload {
	fields := splitFields(body)
	return models.EmailPayload{
		Address: fields.first("TO"),
		Subject: fields.first("SUB"),
		Body:    fields.first("BODY"),
	}
}

// SMTP:address:subject:body
func parseSMTP(body string) models.Payload {
	parts := strings.SplitN(body, ":", 3)

	p := models.EmailPayload{Address: models.StringPtr(parts[0])}
	if len(parts) > 1 {
		p.Subject = models.StringPtr(parts[1])
	}
	if len(parts) > 2 {
		p.Body = models.StringPtr(parts[2])
	}
	return p
}

func parseMecard(body string) models.Payload {
	fields := splitFields(body)

	p := models.ContactPayload{
		Organization: fields.first("ORG"),
		Title:        fields.first("TITLE"),
		Phones:       fields.all("TEL"),
		Emails:       fields.all("EMAIL"),
	}
	if name := fields.first("N"); name != nil {
		p.Name = models.StringPtr(mecardName(*name))
	}

	return p
}

// mecardName turns "Doe,Jane" into "Jane Doe".
func mecardName(name string) string {
	last, first, found := strings.Cut(name, ",")
	if !found {
		return name
	}
	return strings.TrimSpace(first) + " " + strings.TrimSpace(last)
}

func parseVCard(text string) models.Payload {
	var (
		p          models.ContactPayload
		structured *string
	)

	for _, line := range unfoldVCard(text) {
		name, value, found := strings.Cut(line, ":")
		if !found {
			continue
		}
		// strip parameters: TEL;TYPE=CELL
		key, _, _ := strings.Cut(name, ";")
		// strip grouping: item1.EMAIL
		if i := strings.LastIndex(key, "."); i >= 0 {
			key = key[i+1:]
		}

		switch strings.ToUpper(key) {
		case "FN":
			p.Name = models.StringPtr(unescapeVCard(value))
		case "N":
			structured = models.StringPtr(value)
		case "ORG":
			org, _, _ := strings.Cut(value, ";")
			p.Organization = models.StringPtr(unescapeVCard(org))
		case "TITLE":
			p.Title = models.StringPtr(unescapeVCard(value))
		case "TEL":
			p.Phones = append(p.Phones, strings.TrimPrefix(value, "tel:"))
		case "EMAIL":
			p.Emails = append(p.Emails, unescapeVCard(value))
		}
	}

	if p.Name == nil && structured != nil {
		p.Name = models.StringPtr(vcardStructuredName(*structured))
	}

	return p
}

// vcardStructuredName turns "Doe;Jane;;Dr.;" into "Dr. Jane Doe".
func vcardStructuredName(n string) string {
	parts := strings.Split(n, ";")
	for len(parts) < 5 {
		parts = append(parts, "")
	}
	ordered := []string{parts[3], parts[1], parts[2], parts[0], parts[4]}

	var out []string
	for _, part := range ordered {
		if part = strings.TrimSpace(unescapeVCard(part)); part != "" {
			out = append(out, part)
		}
	}
	return strings.Join(out, " ")
}

func unfoldVCard(text string) []string {
	raw := strings.Split(strings.ReplaceAll(text, "\r\n", "\n"), "\n")

	lines := make([]string, 0, len(raw))
	for _, line := range raw {
		if (strings.HasPrefix(line, " ") || strings.HasPrefix(line, "\t")) && len(lines) > 0 {
			lines[len(lines)-1] += line[1:]
			continue
		}
		lines = append(lines, line)
	}
	return lines
}

var vcardUnescaper = strings.NewReplacer(`\n`, "\n", `\N`, "\n", `\,`, ",", `\;`, ";", `\\`, `\`)

func unescapeVCard(s string) string {
	return vcardUnescaper.Replace(s)
}

func isURL(text string) bool {
	if strings.ContainsAny(text, " \t\r\n") {
		return false
	}

	lower := strings.ToLower(text)
	if strings.HasPrefix(lower, "www.") && len(lower) > len("www.") {
		return true
	}

	u, err := url.Parse(text)
	if err != nil || u.Host == "" {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "http", "https", "ftp":
		return true
	default:
		return false
	}
}
