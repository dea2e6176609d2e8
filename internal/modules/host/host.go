package host

import (
	"context"
	"fmt"
	"runtime"
	"strings"

	"github.com/shirou/gopsutil/v3/host"
)

// Platform описывает систему, на которой запущен клиент.
type Platform struct {
	OS       string `json:"os"`
	Arch     string `json:"arch"`
	Platform string `json:"platform,omitempty"`
	Version  string `json:"platform_version,omitempty"`
	Kernel   string `json:"kernel,omitempty"`
}

func (p Platform) String() string {
	s := p.OS + "/" + p.Arch
	if name := strings.TrimSpace(p.Platform + " " + p.Version); name != "" {
		s += " (" + name + ")"
	}
	return s
}

// Describe собирает сведения о платформе; при ошибке gopsutil возвращает только GOOS/GOARCH.
func Describe(ctx context.Context) (Platform, error) {
	p := Platform{OS: runtime.GOOS, Arch: runtime.GOARCH}
	info, err := host.InfoWithContext(ctx)
	if err != nil {
		return p, fmt.Errorf("host info: %w", err)
	}
	p.Platform = info.Platform
	p.Version = info.PlatformVersion
	p.Kernel = info.KernelVersion
	return p, nil
}
