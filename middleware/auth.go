package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"

	"github.com/ruban71/Slooze-Food-App/models"
	"github.com/ruban71/Slooze-Food-App/policy"
)

const (
	claimsKey   = "claims"
	decisionKey = "decision"
)

type Claims struct {
	UserID  uint           `json:"user_id"`
	Email   string         `json:"email"`
	Role    models.Role    `json:"role"`
	Country models.Country `json:"country"`
	jwt.RegisteredClaims
}

// Auth mints and verifies bearer tokens. The signing secret and TTL
// are injected at construction.
type Auth struct {
	secret []byte
	ttl    time.Duration
}

func NewAuth(secret []byte, ttl time.Duration) *Auth {
	return &Auth{secret: secret, ttl: ttl}
}

// GenerateToken creates a signed JWT carrying the user's identity,
// role and country
func (a *Auth) GenerateToken(user *models.User) (string, error) {
	claims := Claims{
		UserID:  user.ID,
		Email:   user.Email,
		Role:    user.Role,
		Country: user.Country,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(time.Now().Add(a.ttl)),
			IssuedAt:  jwt.NewNumericDate(time.Now()),
		},
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString(a.secret)
}

// AuthRequired validates the JWT and injects claims into context
func (a *Auth) AuthRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		authHeader := c.GetHeader("Authorization")
		if authHeader == "" || !strings.HasPrefix(authHeader, "Bearer ") {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authorization header required (Bearer <token>)"})
			c.Abort()
			return
		}
		tokenStr := strings.TrimPrefix(authHeader, "Bearer ")
		claims := &Claims{}
		token, err := jwt.ParseWithClaims(tokenStr, claims, func(t *jwt.Token) (interface{}, error) {
			return a.secret, nil
		})
		if err != nil || !token.Valid {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Invalid or expired token"})
			c.Abort()
			return
		}
		c.Set(claimsKey, claims)
		c.Next()
	}
}

// Authorize resolves the policy decision for the given action and
// rejects denied callers before any handler logic runs. The decision
// is stored in context so handlers can apply its scope to queries.
func Authorize(action policy.Action) gin.HandlerFunc {
	return func(c *gin.Context) {
		claims := GetClaims(c)
		if claims == nil {
			c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
			c.Abort()
			return
		}
		decision := policy.Authorize(claims.Role, claims.Country, action)
		if !decision.Allowed {
			c.JSON(http.StatusForbidden, gin.H{"error": "Access denied for role " + string(claims.Role)})
			c.Abort()
			return
		}
		c.Set(decisionKey, decision)
		c.Next()
	}
}

// GetClaims extracts the verified token claims from context
func GetClaims(c *gin.Context) *Claims {
	val, ok := c.Get(claimsKey)
	if !ok {
		return nil
	}
	claims, _ := val.(*Claims)
	return claims
}

// GetDecision extracts the policy decision stored by Authorize
func GetDecision(c *gin.Context) policy.Decision {
	val, ok := c.Get(decisionKey)
	if !ok {
		return policy.Deny
	}
	decision, _ := val.(policy.Decision)
	return decision
}

// GetUserID extracts caller user ID from context
func GetUserID(c *gin.Context) uint {
	if claims := GetClaims(c); claims != nil {
		return claims.UserID
	}
	return 0
}
