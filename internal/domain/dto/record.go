package dto

import (
	"github.com/Badsnus/qrforge/internal/domain/common/errorz"
	"github.com/Badsnus/qrforge/internal/domain/entity"
)

// RecordForm is the flat, transport-friendly shape of a record. Only the
// fields of the selected Type are read.
type RecordForm struct {
	Type         string `json:"type"`
	Text         string `json:"text,omitempty"`
	URL          string `json:"url,omitempty"`
	SSID         string `json:"ssid,omitempty"`
	Password     string `json:"password,omitempty"`
	Security     string `json:"security,omitempty"`
	Hidden       bool   `json:"hidden,omitempty"`
	Name         string `json:"name,omitempty"`
	Email        string `json:"email,omitempty"`
	Phone        string `json:"phone,omitempty"`
	Organization string `json:"organization,omitempty"`
	Address      string `json:"address,omitempty"`
	Subject      string `json:"subject,omitempty"`
	Body         string `json:"body,omitempty"`
	Lat          string `json:"lat,omitempty"`
	Lon          string `json:"lon,omitempty"`
	Message      string `json:"message,omitempty"`
}

func (f RecordForm) ToRecord() (entity.Record, error) {
	kind, ok := entity.ParseRecordKind(f.Type)
	if !ok {
		return nil, errorz.Wrap("type", errorz.ErrUnknownRecord, "%q", f.Type)
	}

	switch kind {
	case entity.KindText:
		return entity.PlainText{Text: f.Text}, nil
	case entity.KindURL:
		return entity.URL{URL: f.URL}, nil
	case entity.KindWiFi:
		security, ok := entity.ParseWiFiSecurity(f.Security)
		if !ok {
			return nil, errorz.Invalid("security", "must be one of WPA, WEP, nopass, got %q", f.Security)
		}
		return entity.WiFi{SSID: f.SSID, Password: f.Password, Security: security, Hidden: f.Hidden}, nil
	case entity.KindVCard:
		return entity.VCard{
			Name:         f.Name,
			Email:        f.Email,
			Phone:        f.Phone,
			Organization: f.Organization,
			Address:      f.Address,
		}, nil
	case entity.KindEmail:
		return entity.Email{Address: f.Email, Subject: f.Subject, Body: f.Body}, nil
	case entity.KindGeo:
		return entity.Geo{Latitude: f.Lat, Longitude: f.Lon}, nil
	case entity.KindPhone:
		return entity.Phone{Number: f.Phone}, nil
	case entity.KindSMS:
		return entity.SMS{Number: f.Phone, Message: f.Message}, nil
	}
	return nil, errorz.Wrap("type", errorz.ErrUnknownRecord, "%q", kind)
}

// RenderForm carries optional overrides of the configured render options.
type RenderForm struct {
	Level     string `json:"level,omitempty"`
	Scale     *int   `json:"scale,omitempty"`
	Border    *int   `json:"border,omitempty"`
	Dark      string `json:"dark,omitempty"`
	Light     string `json:"light,omitempty"`
	QuietZone string `json:"quiet-zone,omitempty"`
}

// Apply returns base with the fields set in the form replaced.
func (f RenderForm) Apply(base entity.RenderOptions) (entity.RenderOptions, error) {
	if f.Level != "" {
		level, ok := entity.ParseECLevel(f.Level)
		if !ok {
			return base, errorz.Invalid("level", "must be one of L, M, Q, H, got %q", f.Level)
		}
		base.Level = level
	}
	if f.Scale != nil {
		base.Scale = *f.Scale
	}
	if f.Border != nil {
		base.Border = *f.Border
	}
	if f.Dark != "" {
		base.Dark = f.Dark
	}
	if f.Light != "" {
		base.Light = f.Light
	}
	if f.QuietZone != "" {
		base.QuietZone = f.QuietZone
	}
	return base, nil
}
