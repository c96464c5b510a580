package skin

// Sprite is a node that draws a named atlas region, stretched to the
// node's size and multiplied by the accumulated tint.
type Sprite struct {
	Node

	atlas   *Atlas
	texture string
	region  Region
	found   bool
}

// NewSprite creates a sprite showing texture from the default atlas,
// sized to the region's intrinsic size.
func NewSprite(parent *Node, texture string) *Sprite {
	return NewSpriteFrom(parent, texture, DefaultAtlasName)
}

// NewSpriteFrom creates a sprite showing texture from the named atlas.
func NewSpriteFrom(parent *Node, texture, atlasName string) *Sprite {
	s := &Sprite{}
	s.color = White
	s.content = s
	s.SetAtlasTexture(atlasName, texture, true)
	if parent != nil {
		parent.AddChild(&s.Node)
	}
	return s
}

// SetTexture switches to another region of the current atlas. With resize
// the sprite takes the region's intrinsic size.
func (s *Sprite) SetTexture(texture string, resize bool) {
	name := DefaultAtlasName
	if s.atlas != nil {
		name = s.atlas.Name
	}
	s.SetAtlasTexture(name, texture, resize)
}

// SetAtlasTexture switches to texture in the named atlas. A missing atlas
// or region leaves the sprite empty; with resize its size becomes zero.
func (s *Sprite) SetAtlasTexture(atlasName, texture string, resize bool) {
	s.texture = texture
	s.atlas = LookupAtlas(atlasName)
	s.region, s.found = Region{}, false
	if s.atlas == nil {
		widgetLogger.Warn("atlas not found", "atlas", atlasName, "texture", texture)
	} else {
		s.region, s.found = s.atlas.Region(texture)
	}
	if resize {
		sz := s.region.Size()
		s.SetSize(sz.X, sz.Y)
	}
}

// Texture returns the region name.
func (s *Sprite) Texture() string { return s.texture }

// HasTexture reports whether the region was found in the atlas.
func (s *Sprite) HasTexture() bool { return s.found }

// Region returns the atlas region the sprite draws.
func (s *Sprite) Region() Region { return s.region }

func (s *Sprite) draw(dl *DrawList, r Rect, tint Color) {
	if !s.found {
		return
	}
	if s.atlas.TextureID != 0 {
		dl.AddImage(s.atlas.TextureID, r.X, r.Y, r.W, r.H, s.atlas.UV(s.region), tint.Packed())
		return
	}
	dl.AddRect(r.X, r.Y, r.W, r.H, s.region.Fill.Mul(tint).Packed())
}
