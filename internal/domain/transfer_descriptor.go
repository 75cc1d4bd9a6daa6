package domain

import (
	"net/url"
	"strings"
)

// DefaultFilename はファイル名が取得できなかった場合に使用する
const DefaultFilename = "terabox_video.mp4"

// TransferDescriptor はリンク解決の結果で、転送パイプラインの入力となる
type TransferDescriptor struct {
	DirectURL         string
	Filename          string
	DeclaredSizeBytes int64
}

func NewTransferDescriptor(directURL, filename string, declaredSize int64) TransferDescriptor {
	filename = strings.TrimSpace(filename)
	if filename == "" {
		filename = DefaultFilename
	}
	if declaredSize < 0 {
		declaredSize = UnknownSize
	}
	return TransferDescriptor{
		DirectURL:         directURL,
		Filename:          filename,
		DeclaredSizeBytes: declaredSize,
	}
}

func (d TransferDescriptor) HasDirectURL() bool {
	return IsFetchableURL(d.DirectURL)
}

func (d TransferDescriptor) DeclaredSize() Size {
	s, err := NewSize(d.DeclaredSizeBytes)
	if err != nil {
		return Size{}
	}
	return s
}

// IsFetchableURL はhttp(s)スキームかつホストが空でないURLかを判定する
func IsFetchableURL(raw string) bool {
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return false
	}
	return u.Host != ""
}
