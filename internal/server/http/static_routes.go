package httpserver

import (
	"net/http"
	"strings"

	"github.com/gorilla/mux"
)

const viewCookieName = "xiangqi_view"

// registerStaticRoutes 挂载前端资源：
// - /web/*        桌面版
// - /web_mobile/* 手机版
// - /             按 ?view= 覆盖、cookie、User-Agent 的顺序挑一版跳过去
func registerStaticRoutes(r *mux.Router, desktopDir, mobileDir string) {
	if desktopDir == "" {
		desktopDir = "."
	}
	if mobileDir == "" {
		mobileDir = desktopDir
	}

	r.PathPrefix("/web/").Handler(
		http.StripPrefix("/web/", http.FileServer(http.Dir(desktopDir))))
	r.PathPrefix("/web_mobile/").Handler(
		http.StripPrefix("/web_mobile/", http.FileServer(http.Dir(mobileDir))))

	r.HandleFunc("/", func(w http.ResponseWriter, req *http.Request) {
		target := "/web/"
		if pickView(w, req) == "mobile" {
			target = "/web_mobile/"
		}
		w.Header().Set("Vary", "User-Agent, Cookie")
		http.Redirect(w, req, target, http.StatusFound)
	})
}

func pickView(w http.ResponseWriter, r *http.Request) string {
	if v, ok := normalizeView(r.URL.Query().Get("view")); ok {
		// 显式选过的版式记 30 天
		http.SetCookie(w, &http.Cookie{
			Name:     viewCookieName,
			Value:    v,
			Path:     "/",
			MaxAge:   30 * 24 * 60 * 60,
			SameSite: http.SameSiteLaxMode,
		})
		return v
	}
	if c, err := r.Cookie(viewCookieName); err == nil {
		if v, ok := normalizeView(c.Value); ok {
			return v
		}
	}
	if isMobileUA(r.UserAgent()) {
		return "mobile"
	}
	return "web"
}

func normalizeView(v string) (string, bool) {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "web", "desktop", "pc":
		return "web", true
	case "mobile", "m", "phone", "web_mobile":
		return "mobile", true
	}
	return "", false
}

func isMobileUA(ua string) bool {
	s := strings.ToLower(ua)
	for _, n := range []string{"android", "iphone", "ipad", "ipod", "mobile", "windows phone", "harmony"} {
		if strings.Contains(s, n) {
			return true
		}
	}
	return false
}
