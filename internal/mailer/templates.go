package mailer

import (
	"fmt"
	"html"
	"time"
)

// QRCodeCID is the content id the QR email template references.
const QRCodeCID = "qrcode.png"

// QRCodeHTML renders the food-themed check-in mail with the QR image inlined
// via cid.
func QRCodeHTML(name, empID, email string) string {
	return fmt.Sprintf(`
<div style="font-family: 'Segoe UI', Arial, sans-serif; background: linear-gradient(145deg, #fffbe6, #ffe0b2); padding: 32px; border-radius: 18px; max-width: 520px; margin: 0 auto;">
  <h2 style="color: #f57c00; text-align: center; margin-bottom: 10px;">&#127857; Lunch QR Check-In</h2>
  <p style="color: #444; text-align: center; font-size: 18px;">
    Hello <b>%s</b>,<br />
    Your lunch QR code is ready! Just scan it at the counter.
  </p>
  <table role="presentation" width="100%%" style="margin: 24px 0;">
    <tr>
      <td align="center">
        <div style="background: #ffffff; padding: 20px; border-radius: 16px; display: inline-block;">
          <img src="cid:%s" alt="QR Code" style="width: 200px; height: 200px; display: block;" />
        </div>
      </td>
    </tr>
  </table>
  <div style="background: #fff8e1; border-left: 4px solid #ffb300; border-radius: 10px; padding: 16px; margin-bottom: 20px;">
    <p style="margin: 0; color: #f57c00; font-weight: 600;">Employee ID: <span style="color: #333;">%s</span></p>
    <p style="margin: 0; color: #f57c00; font-weight: 600;">Email: <span style="color: #333;">%s</span></p>
  </div>
  <p style="color: #666; text-align: center; font-size: 15px;">
    Please present this QR code at the lunch counter.<br />
    Bon app&eacute;tit!
  </p>
  <div style="text-align: center; margin-top: 24px;">
    <span style="font-size: 13px; color: #bbb;">Lunch QR System &copy; %d</span>
  </div>
</div>`,
		html.EscapeString(name), QRCodeCID, html.EscapeString(empID), html.EscapeString(email), time.Now().Year())
}

// PasswordResetHTML renders the temporary-password mail.
func PasswordResetHTML(name, newPassword string) string {
	return fmt.Sprintf(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto; background: linear-gradient(135deg, #fffdf3, #ffe9c6); padding: 32px; border-radius: 16px;">
  <h2 style="color: #ff9800; text-align: center; margin-top: 0;">Password Reset Successful</h2>
  <p style="color: #333; font-size: 16px;">Hello <strong>%s</strong>,</p>
  <p style="color: #444; font-size: 15px;">
    Your password has been <strong>reset successfully</strong>. You can use the following temporary password to log in:
  </p>
  <div style="background-color: #fff3e0; padding: 16px; border-left: 4px solid #ffa726; border-radius: 8px; margin: 24px 0;">
    <p style="margin: 0; font-size: 18px; color: #e65100;">
      <strong>New Password:</strong> <span style="color: #000;">%s</span>
    </p>
  </div>
  <p style="color: #555; font-size: 14px;">
    <strong>Security Note:</strong> For your protection, please change this password immediately after logging in.
  </p>
  <p style="color: #777; font-size: 14px;">
    If you didn&rsquo;t request this reset, please contact your administrator or support team right away.
  </p>
  <p style="color: #444; font-size: 15px;">
    Best regards,<br />
    <strong>Lunch Scan Team</strong>
  </p>
  <div style="text-align: center; margin-top: 30px;">
    <small style="color: #bbb;">Lunch Scan System &copy; %d</small>
  </div>
</div>`,
		html.EscapeString(name), html.EscapeString(newPassword), time.Now().Year())
}
