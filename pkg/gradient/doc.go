// Package gradient computes a fixed-length sequence of colours interpolated
// between a handful of colour stops.
//
// # Basic Usage
//
//	g, err := gradient.New(gradient.Config{
//		Steps: 5,
//		Stops: gradient.PlainColors{color.MustParse("#f00"), color.MustParse("#00f")},
//	}, nil)
//	if err != nil {
//		log.Fatal(err)
//	}
//	hex, _ := g.Strings(color.FormatHex)
//
// # Stops
//
// Stops come in two shapes, chosen by type:
//
//   - [PlainColors] spreads the stops evenly; the free steps are divided
//     equally between spans and any remainder goes to the leftmost spans.
//   - [PositionedColors] pins each stop to a whole-number position in
//     0-100; spans receive steps in proportion to their width. A stop is
//     added at 0 or 100 with the neighbouring colour when the first or
//     last position leaves that end uncovered.
//
// Input whose shape is only known at run time goes through [ResolveStops],
// which rejects a mix of positioned and unpositioned stops.
//
// # Models
//
// [ModelRGB] interpolates red, green and blue linearly and produces opaque
// colours. [ModelHSL] interpolates saturation, lightness and alpha linearly
// and hue along the shorter arc, so red to blue passes through magenta.
//
// # Logging and Metrics
//
// [Options] carries an optional [Logger] (see [NewSlogAdapter]) and an
// optional [Metrics] that counts builds and can be published with expvar.
//
// # Error Handling
//
// All validation happens in [New]. Failures wrap one of the Err* sentinels
// and can be tested with errors.Is; position problems are reported as
// [*StopError] carrying the stop index and position.
package gradient
