// Copyright (C) 2017 Google Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//      http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"encoding/base64"
	goimage "image"
	"image/png"
	"io"
	"strconv"
	"strings"

	"github.com/dromanov/apitrace/core/data/jsonw"
	"github.com/dromanov/apitrace/core/image"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// dumpedImage is an image object found in a state dump.
type dumpedImage struct {
	Path   string `yaml:"path"`
	Width  uint32 `yaml:"width"`
	Height uint32 `yaml:"height"`
	Format string `yaml:"format"`
	Bytes  int    `yaml:"bytes"`
	png    []byte
}

// imageObject holds the members of a dumped image.
type imageObject struct {
	Class  string `yaml:"__class__"`
	Width  uint32 `yaml:"__width__"`
	Height uint32 `yaml:"__height__"`
	Depth  uint32 `yaml:"__depth__"`
	Format string `yaml:"__format__"`
	Data   string `yaml:"__data__"`
}

// readDump returns the images of the JSON dump read from r, in document
// order. Members are joined into slash separated paths.
func readDump(r io.Reader) ([]dumpedImage, error) {
	var doc yaml.Node
	if err := yaml.NewDecoder(r).Decode(&doc); err != nil {
		if err == io.EOF {
			return nil, nil
		}
		return nil, errors.Wrap(err, "Decoding dump")
	}
	out := []dumpedImage{}
	if err := walkDump(&doc, "", &out); err != nil {
		return nil, err
	}
	return out, nil
}

func joinPath(parent, child string) string {
	if parent == "" {
		return child
	}
	return parent + "/" + child
}

func isImage(n *yaml.Node) bool {
	for i := 0; i+1 < len(n.Content); i += 2 {
		if n.Content[i].Value == jsonw.ClassMember {
			return n.Content[i+1].Value == jsonw.ImageClass
		}
	}
	return false
}

func walkDump(n *yaml.Node, path string, out *[]dumpedImage) error {
	switch n.Kind {
	case yaml.DocumentNode:
		for _, c := range n.Content {
			if err := walkDump(c, path, out); err != nil {
				return err
			}
		}
	case yaml.MappingNode:
		if isImage(n) {
			img, err := decodeImage(n, path)
			if err != nil {
				return err
			}
			*out = append(*out, img)
			return nil
		}
		for i := 0; i+1 < len(n.Content); i += 2 {
			if err := walkDump(n.Content[i+1], joinPath(path, n.Content[i].Value), out); err != nil {
				return err
			}
		}
	case yaml.SequenceNode:
		for i, c := range n.Content {
			if err := walkDump(c, joinPath(path, strconv.Itoa(i)), out); err != nil {
				return err
			}
		}
	}
	return nil
}

func decodeImage(n *yaml.Node, path string) (dumpedImage, error) {
	var obj imageObject
	if err := n.Decode(&obj); err != nil {
		return dumpedImage{}, errors.Wrapf(err, "Decoding image %v", path)
	}
	data, err := base64.StdEncoding.DecodeString(obj.Data)
	if err != nil {
		return dumpedImage{}, errors.Wrapf(err, "Decoding data of image %v", path)
	}
	return dumpedImage{
		Path:   path,
		Width:  obj.Width,
		Height: obj.Height,
		Format: obj.Format,
		Bytes:  len(data),
		png:    data,
	}, nil
}

// Image returns the decoded pixels of i, shrunk to fit in a thumbnail of
// size pixels if size is not 0.
func (i dumpedImage) Image(size int) (goimage.Image, error) {
	img, err := png.Decode(bytes.NewReader(i.png))
	if err != nil {
		return nil, errors.Wrapf(err, "Decoding PNG of %v", i.Path)
	}
	if size > 0 {
		img = image.Thumbnail(img, size)
	}
	return img, nil
}

// FileName returns the name of the PNG file i is extracted to.
func (i dumpedImage) FileName() string {
	return strings.ReplaceAll(i.Path, "/", ".") + ".png"
}
