package service

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/Badsnus/qrforge/internal/domain/common/errorz"
	"github.com/Badsnus/qrforge/internal/domain/entity"
	"github.com/Badsnus/qrforge/internal/domain/utils/validator"
)

// PayloadFormatter turns a record into the string that gets encoded.
//
// Values are trimmed and substituted into fixed templates without escaping.
// With Strict set, values containing a delimiter of their template are
// rejected instead, and geo coordinates must be numbers in range.
type PayloadFormatter struct {
	Strict bool
}

func NewPayloadFormatter(strict bool) *PayloadFormatter {
	return &PayloadFormatter{Strict: strict}
}

type field struct {
	name       string
	value      string
	required   bool
	delimiters string
	strict     func(string) bool
}

func (f *PayloadFormatter) Format(r entity.Record) (string, error) {
	var (
		fields []field
		render func(v []string) string
	)

	switch rec := r.(type) {
	case entity.PlainText:
		fields = []field{{name: "text", value: rec.Text, required: true}}
		render = func(v []string) string { return v[0] }
	case entity.URL:
		fields = []field{{name: "url", value: rec.URL, required: true}}
		render = func(v []string) string { return v[0] }
	case entity.WiFi:
		security := rec.Security
		if security == "" {
			security = entity.SecurityWPA
		}
		fields = []field{
			{name: "ssid", value: rec.SSID, required: true, delimiters: `;:\,"`},
			{name: "password", value: rec.Password, delimiters: `;:\,"`},
		}
		render = func(v []string) string {
			return fmt.Sprintf("WIFI:T:%s;S:%s;P:%s;H:%s;;", security, v[0], v[1], strconv.FormatBool(rec.Hidden))
		}
	case entity.VCard:
		fields = []field{
			{name: "name", value: rec.Name, required: true, delimiters: "\r\n"},
			{name: "email", value: rec.Email, delimiters: "\r\n"},
			{name: "phone", value: rec.Phone, delimiters: "\r\n"},
			{name: "organization", value: rec.Organization, delimiters: "\r\n"},
			{name: "address", value: rec.Address, delimiters: "\r\n"},
		}
		render = func(v []string) string {
			return strings.Join([]string{
				"BEGIN:VCARD",
				"VERSION:3.0",
				"N:" + v[0],
				"EMAIL:" + v[1],
				"TEL:" + v[2],
				"ORG:" + v[3],
				"ADR:" + v[4],
				"END:VCARD",
			}, "\n")
		}
	case entity.Email:
		fields = []field{
			{name: "email", value: rec.Address, required: true, delimiters: "?&"},
			{name: "subject", value: rec.Subject, delimiters: "&"},
			{name: "body", value: rec.Body, delimiters: "&"},
		}
		render = func(v []string) string {
			return fmt.Sprintf("mailto:%s?subject=%s&body=%s", v[0], v[1], v[2])
		}
	case entity.Geo:
		fields = []field{
			{name: "lat", value: rec.Latitude, required: true, delimiters: ",", strict: validator.Latitude},
			{name: "lon", value: rec.Longitude, required: true, delimiters: ",", strict: validator.Longitude},
		}
		render = func(v []string) string { return fmt.Sprintf("geo:%s,%s", v[0], v[1]) }
	case entity.Phone:
		fields = []field{{name: "phone", value: rec.Number, required: true}}
		render = func(v []string) string { return "tel:" + v[0] }
	case entity.SMS:
		fields = []field{
			{name: "phone", value: rec.Number, required: true, delimiters: "?"},
			{name: "message", value: rec.Message},
		}
		render = func(v []string) string { return fmt.Sprintf("sms:%s?body=%s", v[0], v[1]) }
	case nil:
		return "", &errorz.ValidationError{Message: "no record provided"}
	default:
		return "", errorz.Wrap("", errorz.ErrUnknownRecord, "%T", r)
	}

	values := make([]string, len(fields))
	for i, fl := range fields {
		v := strings.TrimSpace(fl.value)
		if fl.required && v == "" {
			return "", errorz.Required(fl.name)
		}
		if f.Strict && fl.delimiters != "" && strings.ContainsAny(v, fl.delimiters) {
			return "", errorz.Invalid(fl.name, "must not contain any of %q", fl.delimiters)
		}
		if f.Strict && fl.strict != nil && !fl.strict(v) {
			return "", errorz.Invalid(fl.name, "invalid value %q", v)
		}
		values[i] = v
	}

	payload := render(values)
	if payload == "" {
		return "", &errorz.ValidationError{Message: "no data provided"}
	}
	return payload, nil
}
