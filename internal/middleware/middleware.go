package middleware

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"log"
	"net/http"
	"strings"

	"proconnect/internal/config"
	handlers "proconnect/internal/handler"
	"proconnect/internal/service"
)

type Middleware func(http.Handler) http.Handler

// AuthMiddleware резолвит непрозрачный токен в пользователя через хранилище
// и кладёт его в контекст запроса
func AuthMiddleware(authService service.AuthService, cfg *config.Config) Middleware {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			// Skipping public endpoints
			publicPaths := []string{
				"/",
				"/health",
				"/api/posts/",
				"/api/user/register",
				"/api/user/login",
				"/api/user/get_all_users",
				"/api/user/download_resume",
			}

			if strings.HasPrefix(r.URL.Path, "/uploads/") {
				next.ServeHTTP(w, r)
				return
			}

			for _, path := range publicPaths {
				if r.URL.Path == path {
					next.ServeHTTP(w, r)
					return
				}
			}

			token := ExtractToken(r, cfg.MaxUploadSize)
			if token == "" {
				handlers.WriteError(w, "Token is required", http.StatusBadRequest)
				return
			}

			user, err := authService.ResolveToken(r.Context(), token)
			if err != nil {
				handlers.WriteError(w, "Unauthorized", http.StatusUnauthorized)
				return
			}

			// Adding user data to the context
			ctx := r.Context()
			ctx = context.WithValue(ctx, "user", user)
			ctx = context.WithValue(ctx, "userID", user.UserID)

			next.ServeHTTP(w, r.WithContext(ctx))
		})
	}
}

// ExtractToken ищет токен в теле запроса, затем в query-параметре token,
// затем в заголовке Authorization: Bearer <token>
func ExtractToken(r *http.Request, maxBodySize int64) string {
	if token := tokenFromBody(r, maxBodySize); token != "" {
		return token
	}

	if token := r.URL.Query().Get("token"); token != "" {
		return token
	}

	authHeader := r.Header.Get("Authorization")
	parts := strings.Split(authHeader, " ")
	if len(parts) == 2 && parts[0] == "Bearer" {
		return parts[1]
	}

	return ""
}

func tokenFromBody(r *http.Request, maxBodySize int64) string {
	contentType := r.Header.Get("Content-Type")

	switch {
	case strings.HasPrefix(contentType, "application/json"):
		if r.Body == nil {
			return ""
		}
		body, err := io.ReadAll(io.LimitReader(r.Body, maxBodySize))
		if err != nil {
			return ""
		}
		// тело восстанавливается, чтобы handler смог прочитать его повторно
		r.Body = io.NopCloser(bytes.NewReader(body))

		var payload struct {
			Token string `json:"token"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return ""
		}
		return payload.Token

	case strings.HasPrefix(contentType, "multipart/form-data"):
		// распарсенная форма остаётся доступной handler'у через r.FormValue
		if err := r.ParseMultipartForm(maxBodySize); err != nil {
			return ""
		}
		return r.FormValue("token")

	case strings.HasPrefix(contentType, "application/x-www-form-urlencoded"):
		if err := r.ParseForm(); err != nil {
			return ""
		}
		return r.PostFormValue("token")
	}

	return ""
}

func CORSMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")

		if r.Method == "OPTIONS" {
			w.WriteHeader(http.StatusOK)
			return
		}

		next.ServeHTTP(w, r)
	})
}

func LoggingMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		log.Printf("Method: %s, URL: %s", r.Method, r.RequestURI)
		next.ServeHTTP(w, r)
	})
}

func Chain(h http.Handler, middlewares ...Middleware) http.Handler {
	for _, m := range middlewares {
		h = m(h)
	}
	return h
}
