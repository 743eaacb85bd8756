package controllers

import (
	"crypto/rand"
	"encoding/base64"

	"github.com/Diyary311/onlineMenu/pkg/resp"
	"github.com/gin-gonic/gin"
)

// GenerateSecret hands out a fresh random secret suitable for JWT_SECRET.
// GET /api/jwtgen/generate
func GenerateSecret(c *gin.Context) {
	buf := make([]byte, 64)
	if _, err := rand.Read(buf); err != nil {
		respondError(c, err)
		return
	}
	resp.OK(c, gin.H{"key": base64.StdEncoding.EncodeToString(buf)})
}
