package handlers

import (
	"fmt"
	"time"

	"agent-dashboard/config"
	"agent-dashboard/database"
	"agent-dashboard/errors"

	"github.com/gofiber/fiber/v2"
	"github.com/golang-jwt/jwt"
	"golang.org/x/crypto/bcrypt"
)

func isPasswordHashCorrect(dbHash, pass string) bool {
	err := bcrypt.CompareHashAndPassword([]byte(dbHash), []byte(pass))
	return err == nil
}

// Login checks credentials against the users collection and issues a JWT
// carrying the agent's identity.
func Login(c *fiber.Ctx) error {
	type Credentials struct {
		Login    string `json:"login"`
		Password string `json:"password"`
	}

	var creds = new(Credentials)

	if err := c.BodyParser(&creds); err != nil {
		return errors.RaiseBadRequestError(c, fmt.Sprintf("cannot parse credentials: %v", err))
	}

	user, geterr := database.GetUserData(creds.Login)
	if geterr != nil {
		return errors.RaiseUnauthorizedError(c, "unknown login")
	}

	if !isPasswordHashCorrect(user.HashedPassword, creds.Password) {
		return errors.RaiseUnauthorizedError(c, "invalid password")
	}

	token := jwt.New(jwt.SigningMethodHS256)

	claims := token.Claims.(jwt.MapClaims)
	claims["username"] = user.Login
	claims["exp"] = time.Now().Add(time.Hour * 8).Unix()
	claims["role"] = user.Role
	claims["agentId"] = user.AgentID
	claims["name"] = user.DisplayName

	sign, enverr := config.GetSecret("JWT_SECRET")
	if enverr != nil {
		return errors.RaiseInternalServerError(c, "token signing is not configured")
	}

	t, err := token.SignedString([]byte(sign))
	if err != nil {
		return errors.RaiseInternalServerError(c, "cannot sign token")
	}

	return c.JSON(fiber.Map{"status": "success", "message": "Success login", "data": t})
}
