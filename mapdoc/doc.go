// Package mapdoc builds maps from declarative YAML or JSON documents.
//
// A document has one map section and optional sections of named declarations
// (coordinates, bounds, markerImages and infoWindows). An object referenced by
// name from several places is built once, so every reference shares the same
// pointer. This is what the aggregator package relies on to collect each
// object a single time.
//
// # Loading
//
//	res, err := mapdoc.Load(mapdoc.WithFilePath("city.yaml"))
//	if err != nil {
//	    var refErr *gmerrors.ReferenceError
//	    if errors.As(err, &refErr) {
//	        log.Fatalf("unknown %s %q at %s", refErr.Kind, refErr.Ref, refErr.Path)
//	    }
//	    log.Fatal(err)
//	}
//	fmt.Println(len(res.Map.Overlays().Markers()), "markers")
//
// The format is taken from WithFormat, then from the file extension, then
// from the content: a document starting with '{' is JSON, anything else YAML.
//
// # Document layout
//
//	coordinates:
//	  louvre: {lat: 48.8606, lng: 2.3376}
//	markerImages:
//	  pin: {url: https://example.com/pin.png, anchor: {x: 10, y: 32}}
//	map:
//	  autoZoom: true
//	  controls:
//	    zoom: {style: small}
//	  overlays:
//	    markers:
//	      - position: {ref: louvre}
//	        icon: {ref: pin}
//	    circles:
//	      - center: {ref: louvre}
//	        radius: 250
//
// Controls listed without a position or style take the defaults of the
// object model. Map options and stylesheet options are merged over the map
// defaults.
//
// Any object may set "variable" to fix its JavaScript variable name. A name
// may be declared once per document. Null list entries are rejected.
package mapdoc
