package service_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Badsnus/qrforge/internal/domain/common/errorz"
	"github.com/Badsnus/qrforge/internal/domain/entity"
	"github.com/Badsnus/qrforge/internal/domain/service"
)

func TestPayloadFormatter_RequiredFieldsOnly(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record entity.Record
		want   string
	}{
		{name: "plain text", record: entity.PlainText{Text: "hello world"}, want: "hello world"},
		{name: "url", record: entity.URL{URL: "https://example.com"}, want: "https://example.com"},
		{name: "wifi", record: entity.WiFi{SSID: "Home"}, want: "WIFI:T:WPA;S:Home;P:;H:false;;"},
		{
			name:   "vcard",
			record: entity.VCard{Name: "Ann Lee"},
			want:   "BEGIN:VCARD\nVERSION:3.0\nN:Ann Lee\nEMAIL:\nTEL:\nORG:\nADR:\nEND:VCARD",
		},
		{name: "email", record: entity.Email{Address: "ann@example.com"}, want: "mailto:ann@example.com?subject=&body="},
		{name: "geo", record: entity.Geo{Latitude: "1.5", Longitude: "-2"}, want: "geo:1.5,-2"},
		{name: "phone", record: entity.Phone{Number: "+15551234"}, want: "tel:+15551234"},
		{name: "sms", record: entity.SMS{Number: "+15551234"}, want: "sms:+15551234?body="},
	}

	f := service.NewPayloadFormatter(false)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := f.Format(tt.record)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestPayloadFormatter_AllFields(t *testing.T) {
	t.Parallel()

	f := service.NewPayloadFormatter(false)

	t.Run("wifi scenario", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(entity.WiFi{SSID: "Home", Password: "secret1", Security: entity.SecurityWPA, Hidden: false})
		require.NoError(t, err)
		assert.Equal(t, "WIFI:T:WPA;S:Home;P:secret1;H:false;;", got)
	})

	t.Run("geo scenario", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(entity.Geo{Latitude: "12.34", Longitude: "56.78"})
		require.NoError(t, err)
		assert.Equal(t, "geo:12.34,56.78", got)
	})

	t.Run("hidden open network", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(entity.WiFi{SSID: "Cafe", Security: entity.SecurityNoPass, Hidden: true})
		require.NoError(t, err)
		assert.Equal(t, "WIFI:T:nopass;S:Cafe;P:;H:true;;", got)
	})

	t.Run("vcard with every field", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(entity.VCard{
			Name:         "Ann Lee",
			Email:        "ann@example.com",
			Phone:        "+15551234",
			Organization: "Acme",
			Address:      "1 Main St",
		})
		require.NoError(t, err)
		assert.Equal(t, "BEGIN:VCARD\nVERSION:3.0\nN:Ann Lee\nEMAIL:ann@example.com\nTEL:+15551234\nORG:Acme\nADR:1 Main St\nEND:VCARD", got)
	})

	t.Run("email with subject and body", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(entity.Email{Address: "ann@example.com", Subject: "Hi", Body: "See you"})
		require.NoError(t, err)
		assert.Equal(t, "mailto:ann@example.com?subject=Hi&body=See you", got)
	})

	t.Run("sms with message", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(entity.SMS{Number: "12345", Message: "on my way"})
		require.NoError(t, err)
		assert.Equal(t, "sms:12345?body=on my way", got)
	})

	t.Run("values are trimmed", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(entity.SMS{Number: "  12345\t", Message: "\n hi \n"})
		require.NoError(t, err)
		assert.Equal(t, "sms:12345?body=hi", got)
	})

	t.Run("delimiters pass through when not strict", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(entity.WiFi{SSID: "a;b", Password: "p:w"})
		require.NoError(t, err)
		assert.Equal(t, "WIFI:T:WPA;S:a;b;P:p:w;H:false;;", got)
	})
}

func TestPayloadFormatter_BlankRequiredField(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		record entity.Record
		field  string
	}{
		{name: "plain text", record: entity.PlainText{Text: " \n\t "}, field: "text"},
		{name: "url", record: entity.URL{}, field: "url"},
		{name: "wifi", record: entity.WiFi{Password: "secret"}, field: "ssid"},
		{name: "vcard", record: entity.VCard{Email: "ann@example.com"}, field: "name"},
		{name: "email", record: entity.Email{Subject: "Hi"}, field: "email"},
		{name: "geo without lon", record: entity.Geo{Latitude: "1"}, field: "lon"},
		{name: "geo without lat", record: entity.Geo{Longitude: "1"}, field: "lat"},
		{name: "phone", record: entity.Phone{Number: "   "}, field: "phone"},
		{name: "sms", record: entity.SMS{Message: "hi"}, field: "phone"},
	}

	f := service.NewPayloadFormatter(false)
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			got, err := f.Format(tt.record)
			require.Error(t, err)
			assert.Empty(t, got)

			var verr *errorz.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestPayloadFormatter_NilRecord(t *testing.T) {
	t.Parallel()

	_, err := service.NewPayloadFormatter(false).Format(nil)
	assert.True(t, errorz.IsValidation(err))
}

func TestPayloadFormatter_Strict(t *testing.T) {
	t.Parallel()

	f := service.NewPayloadFormatter(true)

	rejected := []struct {
		name   string
		record entity.Record
	}{
		{name: "ssid with semicolon", record: entity.WiFi{SSID: "a;b"}},
		{name: "password with colon", record: entity.WiFi{SSID: "Home", Password: "p:w"}},
		{name: "vcard name with newline", record: entity.VCard{Name: "Ann\nEND:VCARD"}},
		{name: "email address with query", record: entity.Email{Address: "a@b.c?cc=x"}},
		{name: "email body with ampersand", record: entity.Email{Address: "a@b.c", Body: "x&y"}},
		{name: "latitude with comma", record: entity.Geo{Latitude: "1,2", Longitude: "3"}},
		{name: "latitude out of range", record: entity.Geo{Latitude: "91", Longitude: "3"}},
		{name: "longitude not a number", record: entity.Geo{Latitude: "1", Longitude: "east"}},
		{name: "sms number with query", record: entity.SMS{Number: "1?body=x"}},
	}

	for _, tt := range rejected {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := f.Format(tt.record)
			assert.True(t, errorz.IsValidation(err), "expected validation error, got %v", err)
		})
	}

	t.Run("clean values pass", func(t *testing.T) {
		t.Parallel()
		got, err := f.Format(entity.Geo{Latitude: "-33.8688", Longitude: "151.2093"})
		require.NoError(t, err)
		assert.Equal(t, "geo:-33.8688,151.2093", got)
	})
}
