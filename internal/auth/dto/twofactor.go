package dto

type TwoFactorCodeInput struct {
	Code string `json:"code"`
}

type TwoFactorSetupOutput struct {
	Secret          string `json:"secret"`
	ProvisioningURI string `json:"provisioning_uri"`
	// QRCode is a PNG data URL of the provisioning URI. Empty when rendering
	// failed; the URI alone is enough to enroll.
	QRCode string `json:"qr_code,omitempty"`
}
