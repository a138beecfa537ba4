package jwthandling

import (
	"testing"
	"time"
)

func TestAuthoringUserToken(t *testing.T) {
	signKey := "test-sign-key"

	t.Run("generate and validate", func(t *testing.T) {
		token, err := GenerateNewAuthoringUserToken(time.Minute, "user1", "instance1", true, signKey)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}

		claims, valid, err := ValidateAuthoringUserToken(token, signKey)
		if err != nil || !valid {
			t.Errorf("token should be valid: %v", err)
			return
		}
		if claims.Subject != "user1" || claims.InstanceID != "instance1" || !claims.IsAdmin {
			t.Errorf("unexpected claims: %+v", claims)
		}
	})

	t.Run("wrong sign key", func(t *testing.T) {
		token, err := GenerateNewAuthoringUserToken(time.Minute, "user1", "instance1", false, signKey)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}

		_, valid, err := ValidateAuthoringUserToken(token, "other-key")
		if err == nil || valid {
			t.Error("token should not validate with a different key")
		}
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := GenerateNewAuthoringUserToken(-time.Minute, "user1", "instance1", false, signKey)
		if err != nil {
			t.Errorf("unexpected error: %v", err)
			return
		}

		_, valid, err := ValidateAuthoringUserToken(token, signKey)
		if err == nil || valid {
			t.Error("expired token should not validate")
		}
	})
}
