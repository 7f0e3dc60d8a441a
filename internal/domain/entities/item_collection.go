package entities

import "encoding/json"

// ItemCollection keeps items in insertion order with an id index, so lookups
// by item id do not scan the list.
type ItemCollection struct {
	items []ShoppingItem
	index map[string]int
}

func NewItemCollection(items ...ShoppingItem) ItemCollection {
	c := ItemCollection{
		items: make([]ShoppingItem, 0, len(items)),
		index: make(map[string]int, len(items)),
	}
	for _, it := range items {
		c.Append(it)
	}
	return c
}

func (c *ItemCollection) Len() int { return len(c.items) }

// All returns a copy of the items in display order.
func (c *ItemCollection) All() []ShoppingItem {
	out := make([]ShoppingItem, len(c.items))
	for i, it := range c.items {
		out[i] = cloneItem(it)
	}
	return out
}

// Get returns a pointer to the stored item. The pointer is only valid until
// the next Append or Remove.
func (c *ItemCollection) Get(id string) (*ShoppingItem, bool) {
	i, ok := c.index[id]
	if !ok {
		return nil, false
	}
	return &c.items[i], true
}

func (c *ItemCollection) Append(it ShoppingItem) {
	if c.index == nil {
		c.index = make(map[string]int)
	}
	c.index[it.ID] = len(c.items)
	c.items = append(c.items, it)
}

func (c *ItemCollection) Remove(id string) bool {
	i, ok := c.index[id]
	if !ok {
		return false
	}
	c.items = append(c.items[:i], c.items[i+1:]...)
	delete(c.index, id)
	for j := i; j < len(c.items); j++ {
		c.index[c.items[j].ID] = j
	}
	return true
}

func (c *ItemCollection) Clone() ItemCollection {
	return NewItemCollection(c.All()...)
}

func (c ItemCollection) MarshalJSON() ([]byte, error) {
	if c.items == nil {
		return []byte("[]"), nil
	}
	return json.Marshal(c.items)
}

func (c *ItemCollection) UnmarshalJSON(data []byte) error {
	var items []ShoppingItem
	if err := json.Unmarshal(data, &items); err != nil {
		return err
	}
	*c = NewItemCollection(items...)
	return nil
}

func cloneItem(it ShoppingItem) ShoppingItem {
	it.ActualPrice = copyFloat(it.ActualPrice)
	it.CompletedAt = copyTime(it.CompletedAt)
	return it
}
