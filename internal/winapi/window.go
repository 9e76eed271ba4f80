// SPDX-License-Identifier: AGPL-3.0-only

package winapi

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

const (
	wsPopup         = 0x80000000
	wsExTopmost     = 0x00000008
	wsExTransparent = 0x00000020
	wsExToolWindow  = 0x00000080
	wsExLayered     = 0x00080000
	wsExNoActivate  = 0x08000000

	lwaAlpha   = 0x2
	swShow     = 5
	pmRemove   = 1
	wmPaint    = 0x000F
	wmQuit     = 0x0012
	blackBrush = 4

	errClassAlreadyExists = 1410
)

// overlayWndProc paints the window solid black; the layered alpha alone
// controls the visible darkness.
var overlayWndProc = syscall.NewCallback(func(hwnd uintptr, message uint32, wparam, lparam uintptr) uintptr {
	if message == wmPaint {
		var ps paintStruct
		hdc, _, _ := procBeginPaint.Call(hwnd, uintptr(unsafe.Pointer(&ps)))
		brush, _, _ := procGetStockObject.Call(blackBrush)
		procFillRect.Call(hdc, uintptr(unsafe.Pointer(&ps.Paint)), brush)
		procEndPaint.Call(hwnd, uintptr(unsafe.Pointer(&ps)))
		return 0
	}
	ret, _, _ := procDefWindowProcW.Call(hwnd, uintptr(message), wparam, lparam)
	return ret
})

// RegisterOverlayClass registers the overlay window class. Registering a
// class that already exists is not an error.
func RegisterOverlayClass(name string) error {
	className, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return fmt.Errorf("invalid class name %q: %w", name, err)
	}
	instance, _, callErr := procGetModuleHandleW.Call(0)
	if instance == 0 {
		return fmt.Errorf("GetModuleHandleW failed: %w", callErr)
	}

	wc := wndClassExW{
		WndProc:   overlayWndProc,
		Instance:  windows.Handle(instance),
		ClassName: className,
	}
	wc.CbSize = uint32(unsafe.Sizeof(wc))

	ret, _, callErr := procRegisterClassExW.Call(uintptr(unsafe.Pointer(&wc)))
	if ret == 0 {
		if errno, ok := callErr.(syscall.Errno); ok && errno == errClassAlreadyExists {
			return nil
		}
		return fmt.Errorf("RegisterClassExW failed: %w", callErr)
	}
	return nil
}

// CreateOverlayWindow creates a borderless, input-transparent, always-on-top
// popup window covering the given rectangle. The window starts fully
// transparent (alpha 0) and visible.
func CreateOverlayWindow(className string, bounds Rect) (HWnd, error) {
	name, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return 0, fmt.Errorf("invalid class name %q: %w", className, err)
	}
	empty, err := windows.UTF16PtrFromString("")
	if err != nil {
		return 0, err
	}
	instance, _, callErr := procGetModuleHandleW.Call(0)
	if instance == 0 {
		return 0, fmt.Errorf("GetModuleHandleW failed: %w", callErr)
	}

	hwnd, _, callErr := procCreateWindowExW.Call(
		wsExLayered|wsExTransparent|wsExTopmost|wsExToolWindow|wsExNoActivate,
		uintptr(unsafe.Pointer(name)),
		uintptr(unsafe.Pointer(empty)),
		wsPopup,
		uintptr(bounds.Left),
		uintptr(bounds.Top),
		uintptr(bounds.Right-bounds.Left),
		uintptr(bounds.Bottom-bounds.Top),
		0,
		0,
		uintptr(instance),
		0,
	)
	if hwnd == 0 {
		return 0, fmt.Errorf("CreateWindowExW failed: %w", callErr)
	}

	if err := SetWindowAlpha(HWnd(hwnd), 0); err != nil {
		procDestroyWindow.Call(hwnd)
		return 0, err
	}
	procShowWindow.Call(hwnd, swShow)
	return HWnd(hwnd), nil
}

// SetWindowAlpha adjusts the compositing alpha of a layered window.
// 0 is fully transparent, 255 fully opaque.
func SetWindowAlpha(hwnd HWnd, alpha uint8) error {
	ret, _, callErr := procSetLayeredWindowAttributes.Call(
		uintptr(hwnd),
		0,
		uintptr(alpha),
		lwaAlpha,
	)
	if ret == 0 {
		return fmt.Errorf("SetLayeredWindowAttributes failed: %w", callErr)
	}
	return nil
}

// DestroyOverlayWindow destroys an overlay window.
func DestroyOverlayWindow(hwnd HWnd) {
	procDestroyWindow.Call(uintptr(hwnd))
}

// PumpMessages drains all pending UI messages for the calling thread and
// reports whether a quit message was seen. Must run on the thread that
// created the windows.
func PumpMessages() (quit bool) {
	var m msg
	for {
		ret, _, _ := procPeekMessageW.Call(
			uintptr(unsafe.Pointer(&m)),
			0,
			0,
			0,
			pmRemove,
		)
		if ret == 0 {
			return false
		}
		if m.Message == wmQuit {
			return true
		}
		procTranslateMessage.Call(uintptr(unsafe.Pointer(&m)))
		procDispatchMessageW.Call(uintptr(unsafe.Pointer(&m)))
	}
}
