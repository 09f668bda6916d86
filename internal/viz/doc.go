// Package viz renders the portfolio page in the terminal.
//
// The package implements the page as a Bubble Tea program:
//
//   - [App]: loading screen, navigation, hero typewriter, counters,
//     reveal-on-scroll sections and the contact form
//   - [Canvas]: Braille surface the particle field draws on
//   - [Styles]: lipgloss rendering of the light and dark palettes
//
// # Key Bindings
//
//	T       - Toggle light/dark theme
//	J/K     - Scroll down/up
//	Tab     - Jump to the next section
//	M       - Open/close the navigation menu
//	G       - Back to top
//	I       - Edit the contact form (contact section)
//	S       - Send the contact form
//	Q       - Quit
//
// Mouse motion over the background moves the particle field pointer.
package viz
