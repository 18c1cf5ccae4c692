package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// UseItemsSystem consumes item activation intents
type UseItemsSystem struct{}

// NewUseItemsSystem creates a new item use system
func NewUseItemsSystem() *UseItemsSystem {
	return &UseItemsSystem{}
}

// Update applies and despawns every activated item
func (s *UseItemsSystem) Update(world *ecs.World, res *Resources, commands *ecs.CommandBuffer) {
	for _, msg := range world.GetEntitiesWithComponent(components.ActivateItem) {
		comp, _ := world.GetComponent(msg, components.ActivateItem)
		activate := comp.(*components.ActivateItemComponent)
		commands.Despawn(msg)

		if !world.IsAlive(activate.Item) {
			continue
		}
		event := ItemUsedEvent{
			UserID:   activate.User,
			ItemID:   activate.Item,
			ItemName: getEntityName(world, activate.Item),
		}

		if healComp, ok := world.GetComponent(activate.Item, components.ProvidesHealing); ok {
			if health, ok := healthOf(world, activate.User); ok {
				before := health.Current
				health.Heal(healComp.(*components.ProvidesHealingComponent).Amount)
				event.Healed = health.Current - before
			}
		}
		if world.HasTag(activate.Item, components.TagProvidesDungeonMap) {
			res.Map.RevealAll()
			event.Revealed = true
		}

		commands.Despawn(activate.Item)
		world.EmitEvent(event)
	}
}

// pickUp moves every item on pt into owner's inventory. Picking up a
// weapon drops (destroys) the weapons already carried.
func pickUp(world *ecs.World, owner ecs.EntityID, pt components.Point, commands *ecs.CommandBuffer) {
	for _, item := range world.GetEntitiesWithTag(components.TagItem) {
		pos, ok := positionOf(world, item)
		if !ok || pos.Point() != pt || world.HasTag(item, components.TagAmulet) {
			continue
		}

		event := ItemPickupEvent{EntityID: owner, ItemID: item, ItemName: getEntityName(world, item)}
		if world.HasTag(item, components.TagWeapon) {
			for _, held := range CarriedBy(world, owner) {
				if world.HasTag(held, components.TagWeapon) {
					event.Replaced = append(event.Replaced, getEntityName(world, held))
					commands.Despawn(held)
				}
			}
		}

		commands.RemoveComponent(item, components.Position)
		commands.AddComponent(item, components.Carried, &components.CarriedComponent{Owner: owner})
		world.EmitEvent(event)
	}
}
