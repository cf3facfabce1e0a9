package entity

import "strings"

type RecordKind string

const (
	KindText  RecordKind = "text"
	KindURL   RecordKind = "url"
	KindWiFi  RecordKind = "wifi"
	KindVCard RecordKind = "vcard"
	KindEmail RecordKind = "email"
	KindGeo   RecordKind = "geo"
	KindPhone RecordKind = "phone"
	KindSMS   RecordKind = "sms"
)

// RecordKinds lists every kind in the order they are offered to users.
var RecordKinds = []RecordKind{KindText, KindURL, KindWiFi, KindVCard, KindEmail, KindGeo, KindPhone, KindSMS}

func ParseRecordKind(s string) (RecordKind, bool) {
	k := RecordKind(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range RecordKinds {
		if k == known {
			return k, true
		}
	}
	return "", false
}

// Record is user-entered data for one QR content type.
// The set of implementations is closed: only the types in this file satisfy it.
type Record interface {
	Kind() RecordKind
	record()
}

type PlainText struct {
	Text string
}

type URL struct {
	URL string
}

type WiFiSecurity string

const (
	SecurityWPA    WiFiSecurity = "WPA"
	SecurityWEP    WiFiSecurity = "WEP"
	SecurityNoPass WiFiSecurity = "nopass"
)

func ParseWiFiSecurity(s string) (WiFiSecurity, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", "wpa":
		return SecurityWPA, true
	case "wep":
		return SecurityWEP, true
	case "nopass", "none":
		return SecurityNoPass, true
	}
	return "", false
}

type WiFi struct {
	SSID     string
	Password string
	Security WiFiSecurity
	Hidden   bool
}

type VCard struct {
	Name         string
	Email        string
	Phone        string
	Organization string
	Address      string
}

type Email struct {
	Address string
	Subject string
	Body    string
}

type Geo struct {
	Latitude  string
	Longitude string
}

type Phone struct {
	Number string
}

type SMS struct {
	Number  string
	Message string
}

func (PlainText) Kind() RecordKind { return KindText }
func (URL) Kind() RecordKind       { return KindURL }
func (WiFi) Kind() RecordKind      { return KindWiFi }
func (VCard) Kind() RecordKind     { return KindVCard }
func (Email) Kind() RecordKind     { return KindEmail }
func (Geo) Kind() RecordKind       { return KindGeo }
func (Phone) Kind() RecordKind     { return KindPhone }
func (SMS) Kind() RecordKind       { return KindSMS }

func (PlainText) record() {}
func (URL) record()       {}
func (WiFi) record()      {}
func (VCard) record()     {}
func (Email) record()     {}
func (Geo) record()       {}
func (Phone) record()     {}
func (SMS) record()       {}
