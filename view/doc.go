// SPDX-License-Identifier: EPL-2.0

// Package view holds the pan/zoom model of the scope display.
//
// Scales move along the 1-2-5 sequence through ScaleStepper. Offsets are
// snapped to a fixed number of steps per division, always flooring toward
// negative infinity so the same gesture yields the same stored offset on
// every machine.
//
// A Manager does not own the state it edits. Each gesture produces a full
// Config snapshot for the registered Observer, which stores it wherever the
// application keeps its project and then refreshes the manager:
//
//	m := view.NewManager()
//	m.SetObserver(view.ObserverFunc(func(c view.Config) {
//	    proj.Config.OffsetX = c.OffsetX
//	    proj.Config.ScalePerDivX = c.ScalePerDivX
//	    m.SetConfig(c)
//	}))
//
//	m.StartDrag()
//	m.DragX(0.1) // pointer moved a tenth of the screen to the right
//
// Axis X uses 10 divisions with 50 snap steps each, axis Y uses 8 divisions
// with 20 snap steps each.
package view
