package widgets

import (
	"log"
	"os/exec"
	"runtime"
)

// OpenURL hands a URL to the platform browser.
func OpenURL(url string) {
	var cmd *exec.Cmd
	switch runtime.GOOS {
	case "darwin":
		cmd = exec.Command("open", url)
	case "windows":
		cmd = exec.Command("rundll32", "url.dll,FileProtocolHandler", url)
	default:
		cmd = exec.Command("xdg-open", url)
	}
	if err := cmd.Start(); err != nil {
		log.Printf("DEBUG: failed to open url: %v", err)
	}
}
