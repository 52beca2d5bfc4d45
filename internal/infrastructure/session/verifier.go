package session

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"

	"github.com/Gimbo67/evokeessence-crypto-exchange-sub004/internal/domain"
)

// HTTPSessionVerifier resolves session tokens against the external auth
// service. Authentication itself is not this service's concern; we only
// consume the verdict.
type HTTPSessionVerifier struct {
	Address string
}

func NewHTTPSessionVerifier(address string) (*HTTPSessionVerifier, error) {
	return &HTTPSessionVerifier{
		Address: address,
	}, nil
}

type verifyRequest struct {
	Token string `json:"token"`
}

type verifyResponse struct {
	UserID     uint64 `json:"user_id"`
	Username   string `json:"username"`
	IsAdmin    bool   `json:"is_admin"`
	IsEmployee bool   `json:"is_employee"`
}

type errorResponse struct {
	Error string `json:"error"`
}

func (v *HTTPSessionVerifier) Verify(token string) (*domain.Session, error) {
	requestBodyBytes, err := json.Marshal(verifyRequest{Token: token})
	if err != nil {
		return nil, err
	}

	response, err := http.Post(fmt.Sprintf("%s/sessions/verify", v.Address), "application/json", bytes.NewBuffer(requestBodyBytes))
	if err != nil {
		return nil, err
	}
	defer response.Body.Close()
	responseBodyBytes, err := io.ReadAll(response.Body)
	if err != nil {
		return nil, err
	}

	if response.StatusCode >= 200 && response.StatusCode < 300 {
		var body verifyResponse
		if err := json.Unmarshal(responseBodyBytes, &body); err != nil {
			return nil, err
		}
		return &domain.Session{
			UserID:     body.UserID,
			Username:   body.Username,
			IsAdmin:    body.IsAdmin,
			IsEmployee: body.IsEmployee,
		}, nil
	}

	var body errorResponse
	if err := json.Unmarshal(responseBodyBytes, &body); err != nil {
		return nil, err
	}
	return nil, errors.New(body.Error)
}
