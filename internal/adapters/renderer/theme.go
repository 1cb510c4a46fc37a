package renderer

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/cadmiumcmyk/curator/pkg/vault"
)

// DefaultThemeName is the built-in theme written on first run
const DefaultThemeName = "Modern Dark"

// themeDark is the built-in gallery theme. User themes in the vault
// follow the same token contract.
const themeDark = `<!DOCTYPE html><html lang="en"><head><meta charset="UTF-8"><title>{{TITLE}}</title><style>
body{font-family:system-ui,sans-serif;background:#121212;color:#e0e0e0;padding:40px}
header{text-align:center; margin-bottom:60px;}
h1{font-weight:300;letter-spacing:2px;margin:0 0 10px 0;}
.role{color:#bb86fc; text-transform:uppercase; font-size:0.9rem; letter-spacing:1px; margin-bottom:20px;}
.bio{max-width:600px; margin:0 auto; color:#aaa; line-height:1.6;}
.grid{display:grid;grid-template-columns:repeat(auto-fill,minmax(350px,1fr));gap:30px;max-width:1600px;margin:0 auto}
.card{background:#1e1e1e;border-radius:12px;overflow:hidden;box-shadow:0 4px 6px rgba(0,0,0,0.3);transition:transform 0.2s; display:flex; flex-direction:column;}
.card:hover{transform:translateY(-5px)}
.card img{width:100%; height: 300px; object-fit: cover; display:block; background:#000;}
.info{padding:20px; flex-grow:1; display:flex; flex-direction:column;}
.info h2{margin:0 0 5px 0;color:#fff;font-size:1.2rem}
.meta{color:#bb86fc;font-size:0.85rem;font-weight:600;text-transform:uppercase;margin-bottom:10px}
.desc{color:#aaa;line-height:1.5;margin-bottom:15px; flex-grow:1;}
.notes{background:#222;border-left:3px solid #bb86fc;padding:10px;font-style:italic;color:#888;margin-bottom:15px;font-size:0.9em}
.btn{display:inline-block;padding:8px 16px;background:#333;color:white;text-decoration:none;border-radius:4px;font-size:0.8rem;align-self:start;}
.btn:hover{background:#444}
footer{text-align:center; margin-top:80px; padding-top:40px; border-top:1px solid #333; color:#666;}
footer a { color: #bb86fc; text-decoration: none; margin: 0 10px; }
</style></head><body>
<header>
    <h1>{{NAME}}</h1>
    <div class="role">{{ROLE}}</div>
    <div class="bio">{{BIO}}</div>
</header>
<div class="grid"></div>
<footer>
    <p>Contact: {{EMAIL}}</p>
    <p>{{LINKS}}</p>
</footer>
</body></html>`

// Theme is a named gallery template on disk
type Theme struct {
	Name string
	Path string
}

// EnsureDefaultTheme writes the built-in theme into the vault if no
// file with its name exists yet. User edits to the file are kept.
func EnsureDefaultTheme(v *vault.Vault) error {
	path := v.GetThemePath(DefaultThemeName + ".html")
	if _, err := os.Stat(path); err == nil {
		return nil
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return fmt.Errorf("failed to create themes directory: %w", err)
	}
	if err := os.WriteFile(path, []byte(themeDark), 0644); err != nil {
		return fmt.Errorf("failed to write default theme: %w", err)
	}
	return nil
}

// AvailableThemes lists the .html themes in the vault, sorted by name
func AvailableThemes(v *vault.Vault) ([]Theme, error) {
	entries, err := os.ReadDir(v.ThemesPath)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to read themes directory: %w", err)
	}

	var themes []Theme
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".html") {
			continue
		}
		themes = append(themes, Theme{
			Name: strings.TrimSuffix(entry.Name(), ".html"),
			Path: filepath.Join(v.ThemesPath, entry.Name()),
		})
	}
	sort.Slice(themes, func(i, j int) bool { return themes[i].Name < themes[j].Name })
	return themes, nil
}

// FindTheme resolves a theme name to its file, falling back to the
// built-in default for unknown names
func FindTheme(v *vault.Vault, name string) (Theme, error) {
	themes, err := AvailableThemes(v)
	if err != nil {
		return Theme{}, err
	}
	for _, t := range themes {
		if t.Name == name {
			return t, nil
		}
	}
	for _, t := range themes {
		if t.Name == DefaultThemeName {
			return t, nil
		}
	}
	// Themes directory empty or unreadable: the renderer falls back to
	// the built-in content when the path can't be read
	return Theme{Name: DefaultThemeName, Path: v.GetThemePath(DefaultThemeName + ".html")}, nil
}
