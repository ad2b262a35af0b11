// Package layers models the data layers drawn over a map.
package layers

import (
	"github.com/erraggy/googlemap/base"
	"github.com/erraggy/googlemap/gmerrors"
)

// KMLLayer renders a KML or GeoRSS file hosted at a public URL.
type KMLLayer struct {
	base.Variable
	base.Options

	url string
}

// NewKMLLayer creates a layer for the document at url.
func NewKMLLayer(url string, options map[string]any) (*KMLLayer, error) {
	l := &KMLLayer{Variable: base.NewVariable("kml_layer_")}
	if err := l.SetURL(url); err != nil {
		return nil, err
	}
	if err := l.SetOptions(options); err != nil {
		return nil, err
	}
	return l, nil
}

// URL returns the document URL.
func (l *KMLLayer) URL() string { return l.url }

// SetURL sets the document URL, which must not be empty.
func (l *KMLLayer) SetURL(url string) error {
	if url == "" {
		return gmerrors.Invalid(gmerrors.ComponentLayer, "kml layer", "url", url,
			"the url of a kml layer must not be empty")
	}
	l.url = url
	return nil
}

// Layers is the ordered list of a map's layers. The zero value is empty.
type Layers struct {
	kmlLayers []*KMLLayer
}

// HasKMLLayers reports whether at least one KML layer is set.
func (l *Layers) HasKMLLayers() bool { return len(l.kmlLayers) > 0 }

// KMLLayers returns the KML layers in insertion order.
func (l *Layers) KMLLayers() []*KMLLayer { return l.kmlLayers }

// AddKMLLayer appends a KML layer. Nil is ignored.
func (l *Layers) AddKMLLayer(layer *KMLLayer) {
	if layer == nil {
		return
	}
	l.kmlLayers = append(l.kmlLayers, layer)
}
