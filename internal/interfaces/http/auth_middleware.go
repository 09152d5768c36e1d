package http

import (
	"strings"

	"github.com/gofiber/fiber/v2"

	"github.com/armazemdigital/wms/internal/application/dto"
	"github.com/armazemdigital/wms/pkg/jwt"
)

// Locals keys para OperadorID, Nome e Role no Fiber.
const (
	LocalOperadorID   = "operador_id"
	LocalOperadorNome = "operador_nome"
	LocalRole         = "role"
)

// AuthMiddleware valida o Bearer Token JWT e extrai OperadorID, Nome e Role para c.Locals.
func AuthMiddleware(jwtSecret string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		authHeader := c.Get("Authorization")
		if authHeader == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "header Authorization requerido"})
		}
		parts := strings.SplitN(authHeader, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "formato: Bearer <token>"})
		}
		tokenString := strings.TrimSpace(parts[1])
		if tokenString == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_TOKEN", Message: "token vazio"})
		}
		operadorID, nome, role, err := jwt.Parse(jwtSecret, tokenString)
		if err != nil {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "INVALID_TOKEN", Message: "token inválido ou expirado"})
		}
		c.Locals(LocalOperadorID, operadorID)
		c.Locals(LocalOperadorNome, nome)
		c.Locals(LocalRole, role)
		return c.Next()
	}
}

// RequireRole autoriza apenas os roles indicados. Usar depois de AuthMiddleware.
func RequireRole(allowed ...string) fiber.Handler {
	return func(c *fiber.Ctx) error {
		role := GetRole(c)
		if role == "" {
			return c.Status(fiber.StatusUnauthorized).JSON(dto.ErrorResponse{Code: "MISSING_ROLE", Message: "token sem role"})
		}
		for _, a := range allowed {
			if role == a {
				return c.Next()
			}
		}
		return c.Status(fiber.StatusForbidden).JSON(dto.ErrorResponse{Code: "FORBIDDEN", Message: "acesso negado"})
	}
}

// GetOperadorID devolve o OperadorID do contexto (após o middleware de auth).
func GetOperadorID(c *fiber.Ctx) string {
	v := c.Locals(LocalOperadorID)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetOperadorNome devolve o nome do operador do contexto.
func GetOperadorNome(c *fiber.Ctx) string {
	v := c.Locals(LocalOperadorNome)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}

// GetRole devolve o role do contexto.
func GetRole(c *fiber.Ctx) string {
	v := c.Locals(LocalRole)
	if v == nil {
		return ""
	}
	s, _ := v.(string)
	return s
}
