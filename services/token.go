package services

import (
	"encoding/json"
	"strings"

	"github.com/dgrijalva/jwt-go"

	"github.com/Goqerti/yeni/errors"
	"github.com/Goqerti/yeni/models"
)

// ActorFromToken bearer tokenin payload hissəsindən istifadəçi kimliyini
// çıxarır. İmza yoxlaması gateway-in işidir; burada yalnız kimlik oxunur.
func ActorFromToken(tokenString string) (models.Actor, error) {
	parts := strings.Split(tokenString, ".")
	if len(parts) != 3 {
		return models.Actor{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token düzgün deyil", nil)
	}

	payload, err := jwt.DecodeSegment(parts[1])
	if err != nil {
		return models.Actor{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token oxuna bilmədi", err)
	}

	claimsMap := jwt.MapClaims{}
	if err := json.Unmarshal(payload, &claimsMap); err != nil {
		return models.Actor{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Token parse edilə bilmədi", err)
	}

	userInfo, ok := claimsMap["userinfo"].(map[string]interface{})
	if !ok {
		return models.Actor{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Tokendə istifadəçi məlumatı yoxdur", nil)
	}

	username, okUser := userInfo["username"].(string)
	if !okUser || username == "" {
		return models.Actor{}, errors.NewAppError(errors.ErrCodeInvalidToken, "Tokendə istifadəçi adı yoxdur", nil)
	}

	actor := models.Actor{Username: username}
	if displayName, ok := userInfo["displayName"].(string); ok && displayName != "" {
		actor.DisplayName = displayName
	} else {
		actor.DisplayName = username
	}
	if role, ok := userInfo["role"].(string); ok {
		actor.Role = role
	} else {
		actor.Role = models.RoleUser
	}

	return actor, nil
}
