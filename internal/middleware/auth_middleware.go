package middleware

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/doualadrive/backend-go/internal/config"
	"github.com/doualadrive/backend-go/internal/database/repository"
	"github.com/doualadrive/backend-go/internal/database/service"
)

// Context keys set by RequireRealmRole for downstream handlers.
const (
	ContextKeycloakID = "keycloakID"
	ContextClaims     = "tokenClaims"
)

// KeycloakMiddleware bridges the external identity provider to the API.
// Tokens are decoded without local signature verification: the Keycloak
// gateway in front of this service owns verification, this layer only reads
// the already-vetted payload for role gating and user provisioning.
type KeycloakMiddleware struct {
	cfg         *config.Config
	userService service.UserService
	logger      *slog.Logger
}

// NewKeycloakMiddleware creates a new Keycloak middleware instance
func NewKeycloakMiddleware(cfg *config.Config, userService service.UserService, logger *slog.Logger) *KeycloakMiddleware {
	return &KeycloakMiddleware{
		cfg:         cfg,
		userService: userService,
		logger:      logger,
	}
}

// RequireRealmRole gates a route group on a realm role claim. Responses
// follow the closed taxonomy: missing token 401, undecodable token 401,
// missing role 403.
func (m *KeycloakMiddleware) RequireRealmRole(role string) gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString, ok := bearerToken(c)
		if !ok {
			m.logger.Warn("⚠️ [Keycloak] Request without bearer token", "path", c.Request.URL.Path)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token d'authentification manquant."})
			c.Abort()
			return
		}

		claims, err := decodeClaims(tokenString)
		if err != nil {
			m.logger.Warn("⚠️ [Keycloak] Undecodable token", "error", err)
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token invalide. Veuillez vous reconnecter."})
			c.Abort()
			return
		}

		roles := m.realmRoles(claims)
		if !containsRole(roles, role) {
			m.logger.Warn("⚠️ [Keycloak] Required realm role missing", "role", role)
			c.JSON(http.StatusForbidden, gin.H{"message": "Accès interdit. Aucun rôle valide trouvé."})
			c.Abort()
			return
		}

		subject, _ := claims["sub"].(string)
		c.Set(ContextKeycloakID, subject)
		c.Set(ContextClaims, claims)
		m.logger.Debug("✅ [Keycloak] Token accepted", "subject", subject, "role", role)

		c.Next()
	}
}

// ProvisionUser creates the local user row on first authenticated access.
// It must run after RequireRealmRole, which puts the decoded claims in the
// request context.
func (m *KeycloakMiddleware) ProvisionUser() gin.HandlerFunc {
	return func(c *gin.Context) {
		claimsValue, exists := c.Get(ContextClaims)
		if !exists {
			m.logger.Error("❌ [Keycloak] ProvisionUser ran without decoded claims")
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token d'authentification manquant."})
			c.Abort()
			return
		}
		claims := claimsValue.(jwt.MapClaims)

		subject, _ := claims["sub"].(string)
		if subject == "" {
			m.logger.Warn("⚠️ [Keycloak] Token without subject claim")
			c.JSON(http.StatusUnauthorized, gin.H{"message": "Token invalide. Veuillez vous reconnecter."})
			c.Abort()
			return
		}

		roles := m.businessRoles(claims)
		if len(roles) == 0 {
			m.logger.Warn("⚠️ [Keycloak] No business role left after filtering defaults", "subject", subject)
			c.JSON(http.StatusForbidden, gin.H{"message": "Accès interdit. Aucun rôle valide trouvé."})
			c.Abort()
			return
		}

		_, err := m.userService.GetUserByKeycloakID(subject)
		if err != nil {
			if !errors.Is(err, repository.ErrUserNotFound) {
				m.logger.Error("❌ [Keycloak] Failed to look up user", "subject", subject, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Une erreur inattendue est survenue."})
				c.Abort()
				return
			}

			email, _ := claims["email"].(string)
			user, err := m.userService.CreateUser(service.NewUserRequest{
				KeycloakID: subject,
				Email:      email,
				Name:       displayName(claims),
				Role:       roles[0], // first remaining role wins
			})
			if err != nil {
				m.logger.Error("❌ [Keycloak] Failed to provision user", "subject", subject, "error", err)
				c.JSON(http.StatusInternalServerError, gin.H{"message": "Une erreur inattendue est survenue."})
				c.Abort()
				return
			}
			m.logger.Info("✅ [Keycloak] New user provisioned", "user_id", user.ID)
		}

		c.Next()
	}
}

// realmRoles returns every realm role of the token, defaults included.
func (m *KeycloakMiddleware) realmRoles(claims jwt.MapClaims) []string {
	realmAccess, ok := claims["realm_access"].(map[string]interface{})
	if !ok {
		return nil
	}
	rawRoles, ok := realmAccess["roles"].([]interface{})
	if !ok {
		return nil
	}

	roles := make([]string, 0, len(rawRoles))
	for _, raw := range rawRoles {
		if role, ok := raw.(string); ok {
			roles = append(roles, role)
		}
	}
	return roles
}

// businessRoles returns realm roles minus the Keycloak defaults every token
// carries.
func (m *KeycloakMiddleware) businessRoles(claims jwt.MapClaims) []string {
	defaults := m.cfg.DefaultRoles()

	var roles []string
	for _, role := range m.realmRoles(claims) {
		if !containsRole(defaults, role) {
			roles = append(roles, role)
		}
	}
	return roles
}

func bearerToken(c *gin.Context) (string, bool) {
	authHeader := c.GetHeader("Authorization")
	if authHeader == "" {
		return "", false
	}

	parts := strings.Split(authHeader, " ")
	if len(parts) != 2 || parts[0] != "Bearer" {
		return "", false
	}
	return parts[1], true
}

// decodeClaims reads the token payload without checking the signature; see
// the KeycloakMiddleware doc for why.
func decodeClaims(tokenString string) (jwt.MapClaims, error) {
	claims := jwt.MapClaims{}
	parser := jwt.NewParser()
	if _, _, err := parser.ParseUnverified(tokenString, claims); err != nil {
		return nil, err
	}
	return claims, nil
}

func displayName(claims jwt.MapClaims) string {
	if username, ok := claims["preferred_username"].(string); ok && username != "" {
		return username
	}

	given, _ := claims["given_name"].(string)
	family, _ := claims["family_name"].(string)
	if given != "" || family != "" {
		return strings.TrimSpace(given + " " + family)
	}

	return "Utilisateur inconnu"
}

func containsRole(roles []string, role string) bool {
	for _, candidate := range roles {
		if candidate == role {
			return true
		}
	}
	return false
}
