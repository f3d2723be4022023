package category

import "time"

// Category is one node of the site's content tree. Depth is capped at two
// levels (section and sub-section), matching the navigation layout.
type Category struct {
	CID       uint      `gorm:"primaryKey;column:c_id;autoIncrement" json:"category_id"`
	ParentID  *uint     `gorm:"column:parent_id;index" json:"parent_id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	Slug      string    `gorm:"size:100;uniqueIndex;not null" json:"slug"`
	SortOrder int       `gorm:"default:0" json:"sort_order"`
	CreatedAt time.Time `gorm:"column:create_at;autoCreateTime" json:"create_at"`
	UpdatedAt time.Time `gorm:"column:update_at;autoUpdateTime" json:"update_at"`
}

func (Category) TableName() string {
	return "categories"
}

// Node is a category with its children, as served to navigation clients.
type Node struct {
	Category
	Children []Node `json:"children"`
}

// BuildTree arranges a flat category list into root nodes ordered by
// SortOrder, children nested under their parents.
func BuildTree(list []Category) []Node {
	byParent := make(map[uint][]Category)
	var roots []Category
	for _, c := range list {
		if c.ParentID == nil {
			roots = append(roots, c)
			continue
		}
		byParent[*c.ParentID] = append(byParent[*c.ParentID], c)
	}

	var build func(c Category) Node
	build = func(c Category) Node {
		node := Node{Category: c, Children: []Node{}}
		for _, child := range byParent[c.CID] {
			node.Children = append(node.Children, build(child))
		}
		return node
	}

	nodes := make([]Node, 0, len(roots))
	for _, root := range roots {
		nodes = append(nodes, build(root))
	}
	return nodes
}
