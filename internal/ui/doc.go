// Package ui implements the modal page as a Bubble Tea program.
//
// Core pieces:
//   - AppModel: the view controller; owns the single visibility flag
//   - Page: the base screen with the "Open Modal" trigger
//   - Dialog: the centred dialog drawn over a dimmed backdrop
//   - KeyListener: the Escape hook attached on Init and detached on Unmount
//   - HitMap: mouse regions recorded while composing each frame
//   - Transition: spring-driven enter/exit animation (cosmetic only)
package ui
