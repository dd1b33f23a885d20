package types

// RegisterRequest is the body of POST /api/auth/register.
type RegisterRequest struct {
	Name          *string `json:"name"`
	Email         *string `json:"email"`
	Role          *string `json:"role"`
	WalletAddress string  `json:"walletAddress"`
}
