package service

import (
	"errors"
	"log"
	"strings"

	googleAuthIDTokenVerifier "github.com/futurenda/google-auth-id-token-verifier"
	validator "github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"quizku_backend/internals/configs"
	userModel "quizku_backend/internals/features/users/user/model"
	helpers "quizku_backend/internals/helpers"
)

var validate = validator.New()

/* ==========================
   SIGNUP
========================== */

type SignupRequest struct {
	UserName string `json:"user_name" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
}

// POST /auth/signup
func Signup(db *gorm.DB, c *fiber.Ctx) error {
	var req SignupRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonFormError(c, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JsonFormError(c, formatSignupError(err))
	}

	passwordHash, err := HashPassword(req.Password)
	if err != nil {
		log.Printf("[ERROR] hash password: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses password")
	}

	user := userModel.UserModel{
		UserName:     strings.TrimSpace(req.UserName),
		UserEmail:    strings.ToLower(strings.TrimSpace(req.Email)),
		UserPassword: passwordHash,
	}
	if err := db.Create(&user).Error; err != nil {
		if isUniqueViolation(err) {
			return helpers.JsonFormError(c, "Email sudah terdaftar")
		}
		log.Printf("[ERROR] create user: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
	}

	return helpers.JsonCreated(c, "Berhasil mendaftar", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
	})
}

/* ==========================
   LOGIN
========================== */

type LoginRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// POST /auth/login — kredensial valid → set cookie sesi.
// Email tak dikenal dan password salah sengaja tidak dibedakan (401 sama).
func Login(db *gorm.DB, c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonFormError(c, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JsonFormError(c, "Email dan password wajib diisi")
	}

	var user userModel.UserModel
	err := db.First(&user, "user_email = ?", strings.ToLower(strings.TrimSpace(req.Email))).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
		}
		log.Printf("[ERROR] login lookup: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}
	if !CheckPassword(user.UserPassword, req.Password) {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "Email atau password salah")
	}

	token, err := IssueSessionToken(user.UserID.String(), user.UserRole)
	if err != nil {
		log.Printf("[ERROR] issue session token: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi")
	}
	SetSessionCookie(c, token)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"user_role": user.UserRole,
	})
}

/* ==========================
   LOGIN GOOGLE
========================== */

type GoogleLoginRequest struct {
	IDToken string `json:"id_token" validate:"required"`
}

// POST /auth/login/google — verifikasi ID token Google, buat user saat
// pertama kali login, lalu set cookie sesi seperti login biasa.
func LoginGoogle(db *gorm.DB, c *fiber.Ctx) error {
	var req GoogleLoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JsonFormError(c, "Payload tidak valid")
	}
	if err := validate.Struct(&req); err != nil {
		return helpers.JsonFormError(c, "id_token wajib diisi")
	}

	v := googleAuthIDTokenVerifier.Verifier{}
	if err := v.VerifyIDToken(req.IDToken, []string{configs.GoogleClientID}); err != nil {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}
	claimSet, err := googleAuthIDTokenVerifier.Decode(req.IDToken)
	if err != nil || strings.TrimSpace(claimSet.Email) == "" {
		return helpers.JsonError(c, fiber.StatusUnauthorized, "ID token Google tidak valid")
	}

	email := strings.ToLower(strings.TrimSpace(claimSet.Email))
	googleID := claimSet.Sub

	var user userModel.UserModel
	err = db.First(&user, "user_google_id = ? OR user_email = ?", googleID, email).Error
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		name := strings.TrimSpace(claimSet.Name)
		if name == "" {
			name = email
		}
		user = userModel.UserModel{
			UserName:     name,
			UserEmail:    email,
			UserPassword: "-", // akun Google tidak punya password lokal
			UserGoogleID: &googleID,
		}
		if err := db.Create(&user).Error; err != nil {
			log.Printf("[ERROR] create google user: %v", err)
			return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mendaftarkan user")
		}
	case err != nil:
		log.Printf("[ERROR] google login lookup: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal memproses login")
	default:
		if user.UserGoogleID == nil {
			// tautkan akun lama dengan Google ID
			if err := db.Model(&user).Update("user_google_id", googleID).Error; err != nil {
				log.Printf("[ERROR] link google id: %v", err)
			}
		}
	}
	if !user.UserIsActive {
		return helpers.JsonError(c, fiber.StatusForbidden, "Akun Anda telah dinonaktifkan")
	}

	token, err := IssueSessionToken(user.UserID.String(), user.UserRole)
	if err != nil {
		log.Printf("[ERROR] issue session token: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal membuat sesi")
	}
	SetSessionCookie(c, token)

	return helpers.JsonOK(c, "Login berhasil", fiber.Map{
		"user_id":   user.UserID,
		"user_name": user.UserName,
		"user_role": user.UserRole,
	})
}

/* ==========================
   LOGOUT & PROFILE
========================== */

// GET /auth/logout — hapus cookie lalu redirect.
func Logout(c *fiber.Ctx) error {
	ClearSessionCookie(c)
	return c.Redirect("/", fiber.StatusFound)
}

// GET /auth/user — agregat quiz milik user; 404 kalau belum pernah
// menyelesaikan quiz (profil dibuat lazy saat completion pertama).
func GetProfile(db *gorm.DB, c *fiber.Ctx) error {
	userID, err := helpers.GetUserIDFromToken(c)
	if err != nil {
		return helpers.JsonFromError(c, err)
	}

	var profile userModel.UserProfileModel
	if err := db.First(&profile, "user_profile_user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JsonError(c, fiber.StatusNotFound, "Profil belum tersedia")
		}
		log.Printf("[ERROR] get profile: %v", err)
		return helpers.JsonError(c, fiber.StatusInternalServerError, "Gagal mengambil profil")
	}

	return helpers.JsonOK(c, "ok", profile)
}

/* ==========================
   Small helpers
========================== */

func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") ||
		strings.Contains(s, "unique constraint") ||
		strings.Contains(s, "23505")
}

func formatSignupError(err error) string {
	var ve validator.ValidationErrors
	if !errors.As(err, &ve) || len(ve) == 0 {
		return "Validasi gagal"
	}
	fe := ve[0]
	switch fe.Tag() {
	case "required":
		return fe.Field() + " wajib diisi"
	case "email":
		return "Format email tidak valid"
	case "min":
		return fe.Field() + " minimal " + fe.Param() + " karakter"
	case "max":
		return fe.Field() + " maksimal " + fe.Param() + " karakter"
	default:
		return "Validasi gagal"
	}
}
