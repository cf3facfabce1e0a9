package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/Badsnus/qrforge/internal/domain/dto"
	"github.com/Badsnus/qrforge/internal/domain/entity"
	qr "github.com/Badsnus/qrforge/pkg/qrcode"
)

func (r *runner) recordCommands() []*cobra.Command {
	text := &cobra.Command{
		Use:   "text <content>...",
		Short: "Encode plain text",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.generate(cmd, dto.RecordForm{Type: string(entity.KindText), Text: strings.Join(args, " ")})
		},
	}

	url := &cobra.Command{
		Use:   "url <link>",
		Short: "Encode a link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.generate(cmd, dto.RecordForm{Type: string(entity.KindURL), URL: args[0]})
		},
	}

	phone := &cobra.Command{
		Use:   "phone <number>",
		Short: "Encode a tel: link",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return r.generate(cmd, dto.RecordForm{Type: string(entity.KindPhone), Phone: args[0]})
		},
	}

	var wifiForm dto.RecordForm
	wifi := &cobra.Command{
		Use:   "wifi",
		Short: "Encode Wi-Fi network credentials",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			wifiForm.Type = string(entity.KindWiFi)
			return r.generate(cmd, wifiForm)
		},
	}
	wifi.Flags().StringVar(&wifiForm.SSID, "ssid", "", "Network name (required)")
	wifi.Flags().StringVar(&wifiForm.Password, "password", "", "Network password")
	wifi.Flags().StringVar(&wifiForm.Security, "security", "WPA", "WPA, WEP or none")
	wifi.Flags().BoolVar(&wifiForm.Hidden, "hidden", false, "Network does not broadcast its SSID")

	var vcardForm dto.RecordForm
	vcard := &cobra.Command{
		Use:   "vcard",
		Short: "Encode a contact card",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			vcardForm.Type = string(entity.KindVCard)
			return r.generate(cmd, vcardForm)
		},
	}
	vcard.Flags().StringVar(&vcardForm.Name, "name", "", "Full name (required)")
	vcard.Flags().StringVar(&vcardForm.Email, "email", "", "Email address")
	vcard.Flags().StringVar(&vcardForm.Phone, "phone", "", "Phone number")
	vcard.Flags().StringVar(&vcardForm.Organization, "org", "", "Organization")
	vcard.Flags().StringVar(&vcardForm.Address, "address", "", "Postal address")

	var emailForm dto.RecordForm
	email := &cobra.Command{
		Use:   "email",
		Short: "Encode a mailto: link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			emailForm.Type = string(entity.KindEmail)
			return r.generate(cmd, emailForm)
		},
	}
	email.Flags().StringVar(&emailForm.Email, "to", "", "Recipient address (required)")
	email.Flags().StringVar(&emailForm.Subject, "subject", "", "Subject line")
	email.Flags().StringVar(&emailForm.Body, "body", "", "Message body")

	var geoForm dto.RecordForm
	geo := &cobra.Command{
		Use:   "geo",
		Short: "Encode a geo: location",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			geoForm.Type = string(entity.KindGeo)
			return r.generate(cmd, geoForm)
		},
	}
	geo.Flags().StringVar(&geoForm.Lat, "lat", "", "Latitude (required)")
	geo.Flags().StringVar(&geoForm.Lon, "lon", "", "Longitude (required)")

	var smsForm dto.RecordForm
	sms := &cobra.Command{
		Use:   "sms",
		Short: "Encode an sms: link",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			smsForm.Type = string(entity.KindSMS)
			return r.generate(cmd, smsForm)
		},
	}
	sms.Flags().StringVar(&smsForm.Phone, "number", "", "Recipient number (required)")
	sms.Flags().StringVar(&smsForm.Message, "message", "", "Prefilled message")

	return []*cobra.Command{text, url, wifi, vcard, email, geo, phone, sms}
}

// generate previews the record with the effective options and saves it.
func (r *runner) generate(cmd *cobra.Command, form dto.RecordForm) error {
	if err := r.load(); err != nil {
		return err
	}
	studio := r.app.Studio

	record, err := form.ToRecord()
	if err != nil {
		return err
	}

	if err = r.configure(cmd); err != nil {
		return err
	}

	kind, ok := qr.ParseKind(r.flags.format)
	if !ok {
		return fmt.Errorf("unknown format %q: must be png or svg", r.flags.format)
	}

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	artifact, err := studio.Preview(ctx, record)
	if err != nil {
		return err
	}

	var notice entity.Notice
	if r.flags.output == "-" {
		notice, err = studio.WriteTo(cmd.OutOrStdout(), kind)
		if err != nil {
			return err
		}
	} else {
		path := r.flags.output
		if path == "" {
			if path, err = r.app.Output.Path(kind); err != nil {
				return err
			}
		}
		if notice, err = studio.Save(path); err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), path)
	}

	if notice != "" {
		fmt.Fprintln(cmd.ErrOrStderr(), notice)
	}
	if r.flags.show && r.flags.output != "-" {
		showTerminal(cmd.OutOrStdout(), artifact)
	}
	return nil
}
