package systems

import (
	"dungeon-crawl/components"
	"dungeon-crawl/ecs"
)

// CombatSystem resolves attack intents
type CombatSystem struct{}

// NewCombatSystem creates a new combat system
func NewCombatSystem() *CombatSystem {
	return &CombatSystem{}
}

// Update applies every WantsToAttack. Monsters that drop below 1 health are
// despawned; the player never is, the end of turn check handles that.
func (s *CombatSystem) Update(world *ecs.World, res *Resources, commands *ecs.CommandBuffer) {
	killed := make(map[ecs.EntityID]bool)

	for _, msg := range world.GetEntitiesWithComponent(components.WantsToAttack) {
		comp, _ := world.GetComponent(msg, components.WantsToAttack)
		attack := comp.(*components.WantsToAttackComponent)
		commands.Despawn(msg)

		if killed[attack.Victim] {
			continue
		}
		health, ok := healthOf(world, attack.Victim)
		if !ok {
			continue
		}

		damage := AttackDamage(world, attack.Attacker)
		health.Current -= damage
		world.EmitEvent(CombatEvent{
			AttackerID:   attack.Attacker,
			DefenderID:   attack.Victim,
			AttackerName: getEntityName(world, attack.Attacker),
			DefenderName: getEntityName(world, attack.Victim),
			Damage:       damage,
			HealthLeft:   health.Current,
		})

		if health.Current < 1 && !isPlayer(world, attack.Victim) {
			killed[attack.Victim] = true
			commands.Despawn(attack.Victim)
			world.EmitEvent(DeathEvent{
				EntityID: attack.Victim,
				KillerID: attack.Attacker,
				Name:     getEntityName(world, attack.Victim),
			})
		}
	}
}

// AttackDamage is the attacker's base damage plus every weapon it carries
func AttackDamage(world *ecs.World, attacker ecs.EntityID) int {
	total := damageOf(world, attacker)
	for _, item := range CarriedBy(world, attacker) {
		if world.HasTag(item, components.TagWeapon) {
			total += damageOf(world, item)
		}
	}
	return total
}
