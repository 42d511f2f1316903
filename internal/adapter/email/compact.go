package email

import (
	"fmt"
	"html/template"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

var _ port.EmailRenderer = (*CompactRenderer)(nil)

// CompactRenderer produces plain table layouts without the branded
// styling. Subjects match the standard renderer.
type CompactRenderer struct {
	customer  *template.Template
	staff     *template.Template
	contact   *template.Template
	autoReply *template.Template
}

func NewCompactRenderer() CompactRenderer {
	return CompactRenderer{
		customer:  template.Must(template.New("customer").Parse(cmpCustomerTpl)),
		staff:     template.Must(template.New("staff").Parse(cmpStaffTpl)),
		contact:   template.Must(template.New("contact").Parse(cmpContactTpl)),
		autoReply: template.Must(template.New("autoReply").Parse(cmpAutoReplyTpl)),
	}
}

func (r CompactRenderer) CustomerConfirmation(o domain.Order) (port.Email, error) {
	const op = "CompactRenderer.CustomerConfirmation"

	html, err := render(r.customer, newOrderView(o))
	if err != nil {
		return port.Email{}, fmt.Errorf("%s: %w", op, err)
	}
	return port.Email{
		Subject: "Order Confirmation - Sticker & Magnet Lab - " + o.OrderID,
		HTML:    html,
	}, nil
}

func (r CompactRenderer) StaffNotification(o domain.Order) (port.Email, error) {
	const op = "CompactRenderer.StaffNotification"

	html, err := render(r.staff, newOrderView(o))
	if err != nil {
		return port.Email{}, fmt.Errorf("%s: %w", op, err)
	}
	return port.Email{
		Subject: "New Order - " + o.OrderID,
		HTML:    html,
	}, nil
}

func (r CompactRenderer) ContactNotification(c domain.Contact) (port.Email, error) {
	const op = "CompactRenderer.ContactNotification"

	html, err := render(r.contact, newContactView(c))
	if err != nil {
		return port.Email{}, fmt.Errorf("%s: %w", op, err)
	}
	return port.Email{
		Subject: staffContactSubject(c.Subject),
		HTML:    html,
	}, nil
}

func (r CompactRenderer) ContactAutoReply(c domain.Contact) (port.Email, error) {
	const op = "CompactRenderer.ContactAutoReply"

	html, err := render(r.autoReply, newContactView(c))
	if err != nil {
		return port.Email{}, fmt.Errorf("%s: %w", op, err)
	}
	return port.Email{
		Subject: "Thank you for contacting Sticker & Magnet Lab",
		HTML:    html,
	}, nil
}

const cmpCustomerTpl = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Order Confirmation - {{.OrderID}}</title></head>
<body>
<h1>Sticker &amp; Magnet Lab</h1>
<h2>Thank you for your order, {{.CustomerName}}!</h2>
<p>Order Number: <strong>{{.OrderID}}</strong><br>Order Date: {{.OrderDate}}</p>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>Product</th><th>Size</th><th>Shape</th><th>Qty</th><th>Price</th></tr>
  {{range .Items}}
  <tr><td>{{.Product}}</td><td>{{.Size}}</td><td>{{.Shape}}</td><td>{{.Quantity}}</td><td>{{.Price}}</td></tr>
  {{end}}
</table>
<p>Subtotal: {{.Subtotal}}<br>Shipping: {{.ShippingLabel}}<br><strong>Total: {{.Total}}</strong></p>
<p>Your order will be produced within 3-5 business days. You will receive
tracking information once your order ships.</p>
</body>
</html>`

const cmpStaffTpl = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Order - {{.OrderID}}</title></head>
<body>
<h1>NEW ORDER RECEIVED</h1>
<p>Order #{{.OrderID}}<br>Received: {{.OrderDate}}<br><strong>Total: {{.Total}}</strong></p>
<h2>Customer</h2>
<p>{{.CustomerName}}<br>{{.CustomerEmail}}<br>{{.CustomerPhone}}</p>
<h2>Shipping Address</h2>
<p>{{range .AddressLines}}{{.}}<br>{{end}}</p>
<h2>Items</h2>
<table border="1" cellpadding="6" cellspacing="0">
  <tr><th>#</th><th>Product</th><th>Size</th><th>Shape</th><th>Qty</th><th>Price</th><th>Artwork</th><th>Instructions</th></tr>
  {{range .Items}}
  <tr>
    <td>{{.Index}}</td><td>{{.Product}}</td><td>{{.Size}}</td><td>{{.Shape}}</td>
    <td>{{.Quantity}}</td><td>{{.Price}}</td>
    <td>{{if .ArtworkURL}}<a href="{{.ArtworkURL}}">Original</a>{{end}}{{if .PreviewURL}} <a href="{{.PreviewURL}}">Preview</a>{{end}}</td>
    <td>{{.Instructions}}</td>
  </tr>
  {{end}}
</table>
</body>
</html>`

const cmpContactTpl = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Contact Form Submission</title></head>
<body>
<h1>New Contact Form Submission</h1>
<p>Received: {{.Received}}<br>Reference ID: {{.ContactID}}</p>
<p>Name: {{.Name}}<br>Email: <a href="mailto:{{.Email}}">{{.Email}}</a><br>Subject: {{.Subject}}</p>
<h2>Message</h2>
<div style="white-space: pre-wrap;">{{.Message}}</div>
</body>
</html>`

const cmpAutoReplyTpl = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Thank You for Contacting Us</title></head>
<body>
<h1>Sticker &amp; Magnet Lab</h1>
<h2>Thank you for reaching out, {{.Name}}!</h2>
<p>We've received your message and will get back to you as soon as possible,
typically within 1-2 business days.</p>
<p>Subject: {{.Subject}}</p>
<div style="white-space: pre-wrap;">{{.Message}}</div>
<p>This is an automated response. Please do not reply directly to this email.</p>
</body>
</html>`
