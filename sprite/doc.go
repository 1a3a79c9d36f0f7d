// Package sprite provides textured sprites and the editable Curve entity.
//
// A [Sprite] owns a mesh, a texture and two transforms: the shape transform
// that came with the mesh (an ellipse's semi-axes, for example) and the
// instance transform set by game logic. The shape applies first.
//
// A [Curve] is a ribbon sprite over a mutable point list. Mutations mark
// the mesh dirty and the next read rebuilds it.
package sprite
