// Package page models the interactive behaviour of the portfolio page
// around the particle background: the loading screen, navigation and
// section highlighting, reveal-on-scroll, animated counters, the hero
// typewriter, back-to-top and the simulated contact form.
//
// Everything here is a plain state machine. Time is passed in by the host
// (a terminal or window front end), which keeps the package free of timers
// apart from [Debouncer] and the [Screen] built on it.
package page
