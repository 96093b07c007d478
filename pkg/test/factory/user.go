package factory

import (
	"time"

	fab "github.com/Goldziher/fabricator"
	"golang.org/x/crypto/bcrypt"

	"usertasks/internal/core/domain"
)

// DefaultPassword is the plain password behind every factory user's hash.
const DefaultPassword = "Abc123!x"

func NewUser(customData ...map[string]any) domain.User {
	instance := fab.New(*new(domain.User))

	hasEncryptedPassword := false

	for _, data := range customData {
		if _, exists := data["EncryptedPassword"]; exists {
			hasEncryptedPassword = true
			break
		}
	}

	if !hasEncryptedPassword {
		encryptedPassword, _ := bcrypt.GenerateFromPassword([]byte(DefaultPassword), bcrypt.MinCost)

		customData = append(customData, map[string]any{
			"EncryptedPassword": string(encryptedPassword),
		})
	}

	customData = append([]map[string]any{{"CreatedAt": time.Now().UTC().Truncate(time.Second)}}, customData...)

	return instance.Build(customData...)
}
