// Package scene describes a mosaic collection in a file so layouts can be
// computed outside of a host application.
//
// A scene lists sections with their item counts and the per-section and
// per-item overrides the layout engine accepts: insets, spacing, header and
// footer sizes, allowed tile sizes and custom pixel sizes. Scenes are read
// from JSON, TOML or YAML; the format is chosen by file extension.
//
//	name: gallery
//	viewport_width: 375
//	sections:
//	  - items: 12
//	    inter_item_spacing: 2
//	    header: {width: 0, height: 44}
//	    overrides:
//	      - item: 0
//	        allowed: [small_banner]
//
// Unknown keys are rejected in every format. [Scene.Validate] checks value
// ranges, and a validated Scene is a [layout.DataSource] whose
// [Scene.Options] supply the remaining hooks.
package scene
