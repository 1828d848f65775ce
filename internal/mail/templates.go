package mail

import (
	"bytes"
	htmltemplate "html/template"
	"strconv"
	"strings"
	texttemplate "text/template"

	"github.com/pkg/errors"

	"chemical-leads-api/internal/models"
	"chemical-leads-api/pkg/utils"
)

// Content is a rendered subject with its plain-text and HTML bodies.
// html/template escapes every interpolated value; the text body is raw.
type Content struct {
	Subject string
	Text    string
	HTML    string
}

var funcs = map[string]any{
	"quantity": utils.FormatQuantity,
	"inc":      func(i int) int { return i + 1 },
	"dash": func(s string) string {
		if strings.TrimSpace(s) == "" {
			return "—"
		}
		return s
	},
}

type contactData struct {
	Brand string
	models.ContactInquiry
}

const contactNotificationHTML = `<div style="font-family:Arial,sans-serif;max-width:640px;margin:0 auto">
  <h2 style="color:#0b4f6c">New Contact Inquiry</h2>
  <table style="width:100%;border-collapse:collapse">
    <tr><td style="padding:6px;font-weight:bold">Name</td><td style="padding:6px">{{.Name}}</td></tr>
    <tr><td style="padding:6px;font-weight:bold">Email</td><td style="padding:6px">{{.Email}}</td></tr>
    <tr><td style="padding:6px;font-weight:bold">Company</td><td style="padding:6px">{{.Company}}</td></tr>
    <tr><td style="padding:6px;font-weight:bold">Country</td><td style="padding:6px">{{.Country}}</td></tr>
    <tr><td style="padding:6px;font-weight:bold">Phone</td><td style="padding:6px">{{.Phone}}</td></tr>
    <tr><td style="padding:6px;font-weight:bold">Looking for</td><td style="padding:6px">{{dash .LookingFor}}</td></tr>
  </table>
  {{if .Message}}<h3>Message</h3>
  <p style="white-space:pre-wrap;background:#f5f7f9;padding:12px">{{.Message}}</p>{{end}}
</div>`

const contactNotificationText = `New Contact Inquiry

Name: {{.Name}}
Email: {{.Email}}
Company: {{.Company}}
Country: {{.Country}}
Phone: {{.Phone}}
Looking for: {{dash .LookingFor}}
{{if .Message}}
Message:
{{.Message}}
{{end}}`

const contactAckHTML = `<div style="font-family:Arial,sans-serif;max-width:640px;margin:0 auto">
  <h2 style="color:#0b4f6c">Thank you, {{.Name}}</h2>
  <p>We have received your inquiry and a member of the {{.Brand}} team will get back to you shortly.</p>
  <h3>Your submission</h3>
  <ul>
    <li><strong>Company:</strong> {{.Company}}</li>
    <li><strong>Country:</strong> {{.Country}}</li>
    <li><strong>Phone:</strong> {{.Phone}}</li>
    {{if .LookingFor}}<li><strong>Looking for:</strong> {{.LookingFor}}</li>{{end}}
  </ul>
  {{if .Message}}<p style="white-space:pre-wrap;background:#f5f7f9;padding:12px">{{.Message}}</p>{{end}}
  <p>Regards,<br>{{.Brand}}</p>
</div>`

const contactAckText = `Thank you, {{.Name}}

We have received your inquiry and a member of the {{.Brand}} team will get back to you shortly.

Your submission
Company: {{.Company}}
Country: {{.Country}}
Phone: {{.Phone}}
{{if .LookingFor}}Looking for: {{.LookingFor}}
{{end}}{{if .Message}}
{{.Message}}
{{end}}
Regards,
{{.Brand}}
`

type rfqData struct {
	models.RFQRequest
	DisplayPhone string
}

const rfqHTML = `<div style="font-family:Arial,sans-serif;max-width:720px;margin:0 auto">
  <div style="background:#0b4f6c;color:#fff;padding:16px">
    <h2 style="margin:0">New Request for Quote</h2>
    <p style="margin:4px 0 0">{{.Company}}</p>
  </div>
  <h3>Contact information</h3>
  <table style="width:100%;border-collapse:collapse">
    <tr><td style="padding:6px;font-weight:bold">Name</td><td style="padding:6px">{{.Name}}</td>
        <td style="padding:6px;font-weight:bold">Email</td><td style="padding:6px">{{.Email}}</td></tr>
    <tr><td style="padding:6px;font-weight:bold">Company</td><td style="padding:6px">{{.Company}}</td>
        <td style="padding:6px;font-weight:bold">City</td><td style="padding:6px">{{.City}}</td></tr>
    <tr><td style="padding:6px;font-weight:bold">Country</td><td style="padding:6px">{{.Country}}</td>
        <td style="padding:6px;font-weight:bold">Phone</td><td style="padding:6px">{{.DisplayPhone}}</td></tr>
  </table>
  <h3>Requested products ({{len .Products}})</h3>
  <table style="width:100%;border-collapse:collapse;border:1px solid #d0d7de">
    <tr style="background:#f5f7f9"><th style="padding:6px;text-align:left">#</th><th style="padding:6px;text-align:left">Product</th><th style="padding:6px;text-align:left">CAS number</th><th style="padding:6px;text-align:left">Category</th><th style="padding:6px;text-align:left">Quantity</th></tr>
    {{range $i, $p := .Products}}<tr><td style="padding:6px">{{inc $i}}</td><td style="padding:6px">{{$p.ProductName}}</td><td style="padding:6px">{{$p.CASNumber}}</td><td style="padding:6px">{{$p.Category.Label}}</td><td style="padding:6px">{{quantity $p.Quantity (printf "%s" $p.Unit)}}</td></tr>
    {{end}}
  </table>
  {{if .Message}}<h3>Additional requirements</h3>
  <p style="white-space:pre-wrap;background:#f5f7f9;padding:12px">{{.Message}}</p>{{end}}
</div>`

const rfqText = `New Request for Quote - {{.Company}}

Contact information
Name: {{.Name}}
Email: {{.Email}}
Company: {{.Company}}
City: {{.City}}
Country: {{.Country}}
Phone: {{.DisplayPhone}}

Requested products ({{len .Products}})
{{range $i, $p := .Products}}{{inc $i}}. {{$p.ProductName}} | CAS {{$p.CASNumber}} | {{$p.Category.Label}} | {{quantity $p.Quantity (printf "%s" $p.Unit)}}
{{end}}{{if .Message}}
Additional requirements:
{{.Message}}
{{end}}`

var (
	contactNotificationHTMLTmpl = htmltemplate.Must(htmltemplate.New("contact.html").Funcs(funcs).Parse(contactNotificationHTML))
	contactNotificationTextTmpl = texttemplate.Must(texttemplate.New("contact.txt").Funcs(funcs).Parse(contactNotificationText))
	contactAckHTMLTmpl          = htmltemplate.Must(htmltemplate.New("ack.html").Funcs(funcs).Parse(contactAckHTML))
	contactAckTextTmpl          = texttemplate.Must(texttemplate.New("ack.txt").Funcs(funcs).Parse(contactAckText))
	rfqHTMLTmpl                 = htmltemplate.Must(htmltemplate.New("rfq.html").Funcs(funcs).Parse(rfqHTML))
	rfqTextTmpl                 = texttemplate.Must(texttemplate.New("rfq.txt").Funcs(funcs).Parse(rfqText))
)

func render(text *texttemplate.Template, html *htmltemplate.Template, data any) (string, string, error) {
	var tb, hb bytes.Buffer
	if err := text.Execute(&tb, data); err != nil {
		return "", "", errors.Wrapf(err, "render %s", text.Name())
	}
	if err := html.Execute(&hb, data); err != nil {
		return "", "", errors.Wrapf(err, "render %s", html.Name())
	}
	return tb.String(), hb.String(), nil
}

// ContactNotification is the internal notice delivered to the sales inbox.
func ContactNotification(inq models.ContactInquiry) (Content, error) {
	text, html, err := render(contactNotificationTextTmpl, contactNotificationHTMLTmpl, contactData{ContactInquiry: inq})
	if err != nil {
		return Content{}, err
	}
	return Content{
		Subject: "New contact inquiry from " + inq.Name + " (" + inq.Company + ")",
		Text:    text,
		HTML:    html,
	}, nil
}

// ContactAcknowledgement is the receipt sent back to the person who wrote in.
func ContactAcknowledgement(inq models.ContactInquiry, brand string) (Content, error) {
	text, html, err := render(contactAckTextTmpl, contactAckHTMLTmpl, contactData{Brand: brand, ContactInquiry: inq})
	if err != nil {
		return Content{}, err
	}
	return Content{
		Subject: "We received your inquiry - " + brand,
		Text:    text,
		HTML:    html,
	}, nil
}

// RFQNotification summarizes every line item of a quote request.
func RFQNotification(req models.RFQRequest, displayPhone string) (Content, error) {
	text, html, err := render(rfqTextTmpl, rfqHTMLTmpl, rfqData{RFQRequest: req, DisplayPhone: displayPhone})
	if err != nil {
		return Content{}, err
	}
	noun := "products"
	if len(req.Products) == 1 {
		noun = "product"
	}
	return Content{
		Subject: "New RFQ from " + req.Name + " (" + req.Company + ") - " + strconv.Itoa(len(req.Products)) + " " + noun,
		Text:    text,
		HTML:    html,
	}, nil
}
