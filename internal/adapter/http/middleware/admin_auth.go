package middleware

import (
	"log"
	"net/http"
	"strings"

	"barberapp/internal/infrastructure/i18n"
	"barberapp/internal/usecase"
	"barberapp/pkg"

	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

const adminClaimsKey = "adminClaims"

// AdminJWT rejects requests without a valid admin bearer token.
func AdminJWT(auth usecase.IAuthUseCase, tr *i18n.Translator) gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || strings.TrimSpace(token) == "" {
			unauthorized(c, tr)
			return
		}

		claims, err := auth.VerifyToken(token)
		if err != nil {
			log.Printf("[auth][middleware] warn rejected token path=%s err=%v", c.Request.URL.Path, err)
			unauthorized(c, tr)
			return
		}
		c.Set(adminClaimsKey, claims)
		c.Next()
	}
}

// AdminClaims returns the claims stored by AdminJWT.
func AdminClaims(c *gin.Context) (*jwt.RegisteredClaims, bool) {
	v, ok := c.Get(adminClaimsKey)
	if !ok {
		return nil, false
	}
	claims, ok := v.(*jwt.RegisteredClaims)
	return claims, ok
}

func unauthorized(c *gin.Context, tr *i18n.Translator) {
	locale := tr.Negotiate(c.Query("locale"), c.GetHeader("Accept-Language"))
	appErr := pkg.NewDomainErrorSimple("UNAUTHORIZED", tr.T(locale, "errors.unauthorized", nil), http.StatusUnauthorized)
	c.AbortWithStatusJSON(appErr.HTTPStatus, appErr.ToHTTPError())
}
