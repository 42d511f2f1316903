package email

import (
	"fmt"
	"html/template"
	"strings"

	"github.com/stickerlab/backend/internal/core/domain"
	"github.com/stickerlab/backend/internal/core/port"
)

var _ port.EmailRenderer = (*StandardRenderer)(nil)

// StandardRenderer produces the branded layout with the blue-to-indigo
// header gradient.
type StandardRenderer struct {
	customer  *template.Template
	staff     *template.Template
	contact   *template.Template
	autoReply *template.Template
}

func NewStandardRenderer() StandardRenderer {
	return StandardRenderer{
		customer:  template.Must(template.New("customer").Parse(stdCustomerTpl)),
		staff:     template.Must(template.New("staff").Parse(stdStaffTpl)),
		contact:   template.Must(template.New("contact").Parse(stdContactTpl)),
		autoReply: template.Must(template.New("autoReply").Parse(stdAutoReplyTpl)),
	}
}

func (r StandardRenderer) CustomerConfirmation(o domain.Order) (port.Email, error) {
	const op = "StandardRenderer.CustomerConfirmation"

	html, err := render(r.customer, newOrderView(o))
	if err != nil {
		return port.Email{}, fmt.Errorf("%s: %w", op, err)
	}
	return port.Email{
		Subject: "Order Confirmation - Sticker & Magnet Lab - " + o.OrderID,
		HTML:    html,
	}, nil
}

func (r StandardRenderer) StaffNotification(o domain.Order) (port.Email, error) {
	const op = "StandardRenderer.StaffNotification"

	html, err := render(r.staff, newOrderView(o))
	if err != nil {
		return port.Email{}, fmt.Errorf("%s: %w", op, err)
	}
	return port.Email{
		Subject: "New Order - " + o.OrderID,
		HTML:    html,
	}, nil
}

func (r StandardRenderer) ContactNotification(c domain.Contact) (port.Email, error) {
	const op = "StandardRenderer.ContactNotification"

	html, err := render(r.contact, newContactView(c))
	if err != nil {
		return port.Email{}, fmt.Errorf("%s: %w", op, err)
	}
	return port.Email{
		Subject: staffContactSubject(c.Subject),
		HTML:    html,
	}, nil
}

func (r StandardRenderer) ContactAutoReply(c domain.Contact) (port.Email, error) {
	const op = "StandardRenderer.ContactAutoReply"

	html, err := render(r.autoReply, newContactView(c))
	if err != nil {
		return port.Email{}, fmt.Errorf("%s: %w", op, err)
	}
	return port.Email{
		Subject: "Thank you for contacting Sticker & Magnet Lab",
		HTML:    html,
	}, nil
}

func render(t *template.Template, data any) (string, error) {
	var b strings.Builder
	if err := t.Execute(&b, data); err != nil {
		return "", err
	}
	return b.String(), nil
}

const stdCustomerTpl = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Order Confirmation - {{.OrderID}}</title></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; color: #333; margin: 0; background-color: #f5f5f5;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; padding: 30px 20px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0; font-size: 28px;">Sticker &amp; Magnet Lab</h1>
    <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0; font-size: 16px;">Order Confirmation</p>
  </div>
  <div style="background: #ffffff; padding: 30px; border: 1px solid #e0e0e0; border-top: none;">
    <h2 style="margin-top: 0;">Thank you for your order, {{.CustomerName}}!</h2>
    <p>We've received your order and it's being processed. Below are your order details.</p>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 25px 0;">
      <table style="width: 100%;">
        <tr><td><strong>Order Number:</strong></td><td style="text-align: right; color: #667eea; font-weight: 600;">{{.OrderID}}</td></tr>
        <tr><td><strong>Order Date:</strong></td><td style="text-align: right;">{{.OrderDate}}</td></tr>
      </table>
    </div>
    <h3 style="border-bottom: 3px solid #667eea; padding-bottom: 10px;">Order Items</h3>
    <table style="width: 100%; border-collapse: collapse;">
      <thead>
        <tr style="background: #f8f9fa;">
          <th style="padding: 12px; text-align: left;">Product</th>
          <th style="padding: 12px; text-align: left;">Details</th>
          <th style="padding: 12px; text-align: center;">Qty</th>
          <th style="padding: 12px; text-align: right;">Price</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td style="padding: 15px; border-bottom: 1px solid #eee;"><strong>{{.Product}}</strong></td>
          <td style="padding: 15px; border-bottom: 1px solid #eee; font-size: 13px; color: #555;">
            Size: {{.Size}}<br>Shape: {{.Shape}}{{if .ArtworkURL}}<br><a href="{{.ArtworkURL}}" style="color: #667eea; text-decoration: none;">Download Artwork</a>{{end}}
          </td>
          <td style="padding: 15px; border-bottom: 1px solid #eee; text-align: center;">{{.Quantity}}</td>
          <td style="padding: 15px; border-bottom: 1px solid #eee; text-align: right;">{{.Price}}</td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin-top: 20px;">
      <table style="width: 100%;">
        <tr><td style="padding: 8px 0;">Subtotal:</td><td style="padding: 8px 0; text-align: right;">{{.Subtotal}}</td></tr>
        <tr><td style="padding: 8px 0;">Shipping:</td><td style="padding: 8px 0; text-align: right;">{{.ShippingLabel}}</td></tr>
        <tr style="border-top: 2px solid #ddd;">
          <td style="padding: 12px 0; font-size: 18px;"><strong>Total:</strong></td>
          <td style="padding: 12px 0; text-align: right; font-size: 22px; color: #667eea; font-weight: 700;">{{.Total}}</td>
        </tr>
      </table>
    </div>
    <div style="background: #fff3cd; border: 1px solid #ffc107; padding: 20px; border-radius: 8px; margin: 25px 0;">
      <h4 style="margin: 0 0 10px 0; color: #856404;">Production &amp; Shipping</h4>
      <p style="margin: 0; color: #856404;">Your order will be produced within <strong>3-5 business days</strong>.
      You will receive a notification with tracking information once your order ships.</p>
    </div>
    <p>If you have any questions about your order, please don't hesitate to contact us.</p>
  </div>
  <div style="text-align: center; padding: 25px; background: #ffffff; border: 1px solid #e0e0e0; border-top: none; border-radius: 0 0 10px 10px;">
    <p style="color: #666; font-size: 14px; margin: 0;">Thank you for choosing Sticker &amp; Magnet Lab!</p>
  </div>
</div>
</body>
</html>`

const stdStaffTpl = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Order - {{.OrderID}}</title></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; color: #333; margin: 0; background-color: #f5f5f5;">
<div style="max-width: 800px; margin: 0 auto; padding: 20px;">
  <div style="background: #dc3545; color: white; padding: 20px; border-radius: 5px 5px 0 0; text-align: center;">
    <h1 style="margin: 0; font-size: 24px;">NEW ORDER RECEIVED</h1>
    <p style="margin: 10px 0 0 0; font-size: 18px; opacity: 0.9;">Action Required</p>
  </div>
  <div style="background: #fff; padding: 25px; border: 1px solid #ddd; border-top: none;">
    <div style="background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; padding: 20px; border-radius: 8px; margin-bottom: 25px;">
      <table style="width: 100%;">
        <tr>
          <td>
            <h2 style="margin: 0; font-size: 22px;">Order #{{.OrderID}}</h2>
            <p style="margin: 5px 0 0 0; opacity: 0.9;">Received: {{.OrderDate}}</p>
          </td>
          <td style="text-align: right;"><span style="font-size: 28px; font-weight: 700;">{{.Total}}</span></td>
        </tr>
      </table>
    </div>
    <table style="width: 100%; margin-bottom: 25px;">
      <tr>
        <td style="width: 50%; vertical-align: top; padding-right: 15px;">
          <h3 style="border-bottom: 3px solid #17a2b8; padding-bottom: 10px; margin-top: 0;">Customer Information</h3>
          <table style="width: 100%;">
            <tr><td style="padding: 8px 0;"><strong>Name:</strong></td><td>{{.CustomerName}}</td></tr>
            <tr><td style="padding: 8px 0;"><strong>Email:</strong></td><td><a href="mailto:{{.CustomerEmail}}" style="color: #667eea;">{{.CustomerEmail}}</a></td></tr>
            <tr><td style="padding: 8px 0;"><strong>Phone:</strong></td><td>{{.CustomerPhone}}</td></tr>
          </table>
        </td>
        <td style="width: 50%; vertical-align: top; padding-left: 15px;">
          <h3 style="border-bottom: 3px solid #17a2b8; padding-bottom: 10px; margin-top: 0;">Shipping Address</h3>
          <div style="background: #f8f9fa; padding: 15px; border-radius: 5px;">
            {{range .AddressLines}}{{.}}<br>{{end}}
          </div>
        </td>
      </tr>
    </table>
    <h3 style="border-bottom: 3px solid #17a2b8; padding-bottom: 10px;">Order Items</h3>
    <table style="width: 100%; border-collapse: collapse; margin-bottom: 20px;">
      <thead>
        <tr style="background: #343a40; color: white;">
          <th style="padding: 12px; text-align: center; width: 40px;">#</th>
          <th style="padding: 12px; text-align: left;">Product</th>
          <th style="padding: 12px; text-align: center;">Size</th>
          <th style="padding: 12px; text-align: center;">Qty</th>
          <th style="padding: 12px; text-align: right;">Price</th>
          <th style="padding: 12px; text-align: center;">Artwork</th>
        </tr>
      </thead>
      <tbody>
        {{range .Items}}
        <tr>
          <td style="padding: 12px; border: 1px solid #ddd; text-align: center;">{{.Index}}</td>
          <td style="padding: 12px; border: 1px solid #ddd;">{{.Product}}</td>
          <td style="padding: 12px; border: 1px solid #ddd; text-align: center;">Size: {{.Size}}<br>Shape: {{.Shape}}</td>
          <td style="padding: 12px; border: 1px solid #ddd; text-align: center;">{{.Quantity}}</td>
          <td style="padding: 12px; border: 1px solid #ddd; text-align: right;">{{.Price}}</td>
          <td style="padding: 12px; border: 1px solid #ddd;">
            {{if .ArtworkURL}}<a href="{{.ArtworkURL}}" target="_blank" style="color: #007bff; font-weight: 600;">Original</a>{{end}}
            {{if .PreviewURL}}<br><a href="{{.PreviewURL}}" target="_blank" style="color: #007bff;">Preview</a>{{end}}
          </td>
        </tr>
        <tr>
          <td colspan="6" style="padding: 10px 12px; border: 1px solid #ddd; background: #fafafa;">
            <strong>Special Instructions:</strong> {{.Instructions}}
          </td>
        </tr>
        {{end}}
      </tbody>
    </table>
    <div style="background: #28a745; color: white; padding: 20px; border-radius: 5px; text-align: right;">
      <span style="font-size: 18px;">Order Total: </span>
      <span style="font-size: 28px; font-weight: 700;">{{.Total}}</span>
    </div>
  </div>
  <div style="text-align: center; padding: 15px; color: #666; font-size: 12px;">
    <p>This notification was sent to staff members at Sticker &amp; Magnet Lab</p>
  </div>
</div>
</body>
</html>`

const stdContactTpl = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>New Contact Form Submission</title></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; color: #333; margin: 0; background-color: #f5f5f5;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: #17a2b8; color: white; padding: 20px; border-radius: 5px 5px 0 0;">
    <h1 style="margin: 0; font-size: 22px;">New Contact Form Submission</h1>
    <p style="margin: 5px 0 0 0; opacity: 0.9;">Received: {{.Received}}</p>
  </div>
  <div style="background: #fff; padding: 25px; border: 1px solid #ddd; border-top: none;">
    <div style="background: #f8f9fa; padding: 15px; border-radius: 5px; margin-bottom: 20px;">
      <table style="width: 100%;">
        <tr><td><strong>Reference ID:</strong></td><td style="text-align: right; font-family: monospace;">{{.ContactID}}</td></tr>
      </table>
    </div>
    <h3 style="border-bottom: 3px solid #17a2b8; padding-bottom: 10px;">Contact Information</h3>
    <table style="width: 100%; margin-bottom: 25px;">
      <tr><td style="padding: 10px 0; width: 100px;"><strong>Name:</strong></td><td style="padding: 10px 0;">{{.Name}}</td></tr>
      <tr><td style="padding: 10px 0;"><strong>Email:</strong></td><td style="padding: 10px 0;"><a href="mailto:{{.Email}}" style="color: #667eea;">{{.Email}}</a></td></tr>
      <tr><td style="padding: 10px 0;"><strong>Subject:</strong></td><td style="padding: 10px 0;">{{.Subject}}</td></tr>
    </table>
    <h3 style="border-bottom: 3px solid #17a2b8; padding-bottom: 10px;">Message</h3>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 5px; white-space: pre-wrap; margin-bottom: 25px;">{{.Message}}</div>
    <div style="text-align: center; margin: 25px 0;">
      <a href="mailto:{{.Email}}" style="display: inline-block; padding: 12px 30px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); color: white; text-decoration: none; border-radius: 5px; font-weight: 600;">Reply to {{.Name}}</a>
    </div>
  </div>
  <div style="text-align: center; padding: 15px; color: #666; font-size: 12px;">
    <p>This notification was sent to staff members at Sticker &amp; Magnet Lab</p>
  </div>
</div>
</body>
</html>`

const stdAutoReplyTpl = `<!DOCTYPE html>
<html lang="en">
<head><meta charset="UTF-8"><title>Thank You for Contacting Us</title></head>
<body style="font-family: 'Segoe UI', Arial, sans-serif; color: #333; margin: 0; background-color: #f5f5f5;">
<div style="max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="text-align: center; padding: 30px 20px; background: linear-gradient(135deg, #667eea 0%, #764ba2 100%); border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0; font-size: 28px;">Sticker &amp; Magnet Lab</h1>
    <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0 0; font-size: 16px;">We've Received Your Message</p>
  </div>
  <div style="background: #ffffff; padding: 30px; border: 1px solid #e0e0e0; border-top: none;">
    <h2 style="margin-top: 0;">Thank you for reaching out, {{.Name}}!</h2>
    <p>We've received your message and will get back to you as soon as possible,
    typically within <strong>1-2 business days</strong>.</p>
    <div style="background: #f8f9fa; padding: 20px; border-radius: 8px; margin: 25px 0;">
      <h3 style="margin: 0 0 15px 0; color: #555;">Your Message Summary:</h3>
      <p style="margin: 5px 0;"><strong>Subject:</strong> {{.Subject}}</p>
      <div style="margin-top: 15px; padding: 15px; background: white; border-radius: 5px; border-left: 4px solid #667eea;">
        <p style="margin: 0; white-space: pre-wrap;">{{.Message}}</p>
      </div>
    </div>
    <div style="background: #d4edda; border: 1px solid #28a745; padding: 20px; border-radius: 8px; margin: 25px 0;">
      <h4 style="margin: 0 0 10px 0; color: #155724;">What happens next?</h4>
      <ul style="margin: 0; padding-left: 20px; color: #155724;">
        <li>Our team will review your message</li>
        <li>We'll respond via email within 1-2 business days</li>
        <li>For urgent matters, you can also call us directly</li>
      </ul>
    </div>
  </div>
  <div style="text-align: center; padding: 25px; background: #ffffff; border: 1px solid #e0e0e0; border-top: none; border-radius: 0 0 10px 10px;">
    <p style="color: #666; font-size: 14px; margin: 0;">Thank you for choosing Sticker &amp; Magnet Lab!</p>
    <p style="color: #999; font-size: 12px; margin: 15px 0 0 0;">This is an automated response. Please do not reply directly to this email.</p>
  </div>
</div>
</body>
</html>`
