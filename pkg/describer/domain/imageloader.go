package domain

type ImageLoader interface {
	LoadImageBytes(path string) ([]byte, error)
}
