package ports

// VisualTarget recebe a identidade visual da empresa (data URLs de logo e favicon).
type VisualTarget interface {
	ApplyLogo(dataURL string)
	ApplyFavicon(dataURL string)
}
